package handler

import "github.com/comclic/clinic-records/internal/core/domain"

// createFinanceRequest leaves record_id optional; the service generates one.
type createFinanceRequest struct {
	RecordID         string   `json:"record_id" validate:"omitempty,max=64"`
	RecordOfficer    string   `json:"record_officer" validate:"required"`
	PaymentType      string   `json:"payment_type" validate:"required"`
	Source           []string `json:"source" validate:"required,min=1,dive,source"`
	DailyTotalAmount *float64 `json:"daily_total_amount" validate:"required,gte=0"`
	ReviewedByDoctor bool     `json:"reviewed_by_doctor"`
}

func (r createFinanceRequest) toDomain() *domain.FinanceRecord {
	return &domain.FinanceRecord{
		RecordID:         r.RecordID,
		RecordOfficer:    r.RecordOfficer,
		PaymentType:      r.PaymentType,
		Source:           fromStrings[domain.Source](r.Source),
		DailyTotalAmount: *r.DailyTotalAmount,
		ReviewedByDoctor: r.ReviewedByDoctor,
	}
}

type updateFinanceRequest struct {
	RecordOfficer    *string  `json:"record_officer" validate:"omitempty,min=1"`
	PaymentType      *string  `json:"payment_type" validate:"omitempty,min=1"`
	Source           []string `json:"source" validate:"omitempty,min=1,dive,source"`
	DailyTotalAmount *float64 `json:"daily_total_amount" validate:"omitempty,gte=0"`
	ReviewedByDoctor *bool    `json:"reviewed_by_doctor"`
}

func (r updateFinanceRequest) toDomain() domain.FinanceUpdate {
	return domain.FinanceUpdate{
		RecordOfficer:    r.RecordOfficer,
		PaymentType:      r.PaymentType,
		Source:           fromStrings[domain.Source](r.Source),
		DailyTotalAmount: r.DailyTotalAmount,
		ReviewedByDoctor: r.ReviewedByDoctor,
	}
}
