package ports

import (
	"context"

	"github.com/comclic/clinic-records/internal/core/domain"
)

// PatientRepository persists patients keyed by hospital_no.
type PatientRepository interface {
	// Create fails with domain.ErrDuplicateKey when the hospital_no exists.
	Create(ctx context.Context, p *domain.Patient) error
	FindByHospitalNo(ctx context.Context, hospitalNo string) (*domain.Patient, error)
	List(ctx context.Context, page PageRequest) (Page[*domain.Patient], error)
	// Update overwrites the mutable fields of the record matching p.HospitalNo.
	Update(ctx context.Context, p *domain.Patient) error
	Delete(ctx context.Context, hospitalNo string) error
}

// ImmunizationRepository persists immunizations keyed by card_no.
type ImmunizationRepository interface {
	Create(ctx context.Context, im *domain.Immunization) error
	FindByCardNo(ctx context.Context, cardNo string) (*domain.Immunization, error)
	List(ctx context.Context, page PageRequest) (Page[*domain.Immunization], error)
	Update(ctx context.Context, im *domain.Immunization) error
	Delete(ctx context.Context, cardNo string) error
}

// FinanceRepository persists financial records keyed by record_id.
type FinanceRepository interface {
	Create(ctx context.Context, f *domain.FinanceRecord) error
	FindByRecordID(ctx context.Context, recordID string) (*domain.FinanceRecord, error)
	List(ctx context.Context, page PageRequest) (Page[*domain.FinanceRecord], error)
	Update(ctx context.Context, f *domain.FinanceRecord) error
	Delete(ctx context.Context, recordID string) error
}
