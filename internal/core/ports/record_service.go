package ports

import (
	"context"

	"github.com/comclic/clinic-records/internal/core/domain"
)

// The actor argument is the authenticated user performing the write; its
// username is stamped into entered_by.

type PatientService interface {
	Create(ctx context.Context, actor *domain.User, p *domain.Patient) (*domain.Patient, error)
	Get(ctx context.Context, hospitalNo string) (*domain.Patient, error)
	List(ctx context.Context, page PageRequest) (Page[*domain.Patient], error)
	Update(ctx context.Context, actor *domain.User, hospitalNo string, u domain.PatientUpdate) (*domain.Patient, error)
	Delete(ctx context.Context, hospitalNo string) error
}

type ImmunizationService interface {
	Create(ctx context.Context, actor *domain.User, im *domain.Immunization) (*domain.Immunization, error)
	Get(ctx context.Context, cardNo string) (*domain.Immunization, error)
	List(ctx context.Context, page PageRequest) (Page[*domain.Immunization], error)
	Update(ctx context.Context, actor *domain.User, cardNo string, u domain.ImmunizationUpdate) (*domain.Immunization, error)
	Delete(ctx context.Context, cardNo string) error
}

type FinanceService interface {
	Create(ctx context.Context, actor *domain.User, f *domain.FinanceRecord) (*domain.FinanceRecord, error)
	Get(ctx context.Context, recordID string) (*domain.FinanceRecord, error)
	List(ctx context.Context, page PageRequest) (Page[*domain.FinanceRecord], error)
	// Update rejects reviewed_by_doctor=true from non-doctors with domain.ErrForbidden.
	Update(ctx context.Context, actor *domain.User, recordID string, u domain.FinanceUpdate) (*domain.FinanceRecord, error)
	Delete(ctx context.Context, recordID string) error
}
