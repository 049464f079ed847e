package domain

import "time"

// FinanceRecord is a daily revenue entry booked by a record officer.
type FinanceRecord struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	RecordID         string    `json:"record_id" bson:"record_id"`
	RecordOfficer    string    `json:"record_officer" bson:"record_officer"`
	PaymentType      string    `json:"payment_type" bson:"payment_type"`
	Source           []Source  `json:"source" bson:"source"`
	DailyTotalAmount float64   `json:"daily_total_amount" bson:"daily_total_amount"`
	ReviewedByDoctor bool      `json:"reviewed_by_doctor" bson:"reviewed_by_doctor"`
	EnteredBy        string    `json:"entered_by" bson:"entered_by"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" bson:"updated_at"`
}

type FinanceUpdate struct {
	RecordOfficer    *string
	PaymentType      *string
	Source           []Source
	DailyTotalAmount *float64
	ReviewedByDoctor *bool
}

// MarksReviewed reports whether the update sets reviewed_by_doctor to true.
// Only doctors may do that.
func (u FinanceUpdate) MarksReviewed() bool {
	return u.ReviewedByDoctor != nil && *u.ReviewedByDoctor
}

func (f *FinanceRecord) Apply(u FinanceUpdate) {
	setString(&f.RecordOfficer, u.RecordOfficer)
	setString(&f.PaymentType, u.PaymentType)
	if u.Source != nil {
		f.Source = u.Source
	}
	if u.DailyTotalAmount != nil {
		f.DailyTotalAmount = *u.DailyTotalAmount
	}
	if u.ReviewedByDoctor != nil {
		f.ReviewedByDoctor = *u.ReviewedByDoctor
	}
}
