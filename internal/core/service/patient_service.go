package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/comclic/clinic-records/internal/core/domain"
	"github.com/comclic/clinic-records/internal/core/ports"
	"github.com/comclic/clinic-records/internal/pkg/metrics"
)

// PatientService implements patient CRUD. Role checks happen in the router.
type PatientService struct {
	repo   ports.PatientRepository
	logger zerolog.Logger
}

func NewPatientService(repo ports.PatientRepository, logger zerolog.Logger) *PatientService {
	return &PatientService{repo: repo, logger: logger}
}

func (s *PatientService) Create(ctx context.Context, actor *domain.User, p *domain.Patient) (*domain.Patient, error) {
	if actor == nil {
		return nil, domain.ErrNotLoggedIn
	}
	if p.HospitalNo == "" {
		return nil, fmt.Errorf("%w: hospital_no is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	p.ID = ""
	p.CreatedAt = now
	p.UpdatedAt = now
	p.EnteredBy = actor.Username

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("patient", "create").Inc()
	s.logger.Info().Str("hospital_no", p.HospitalNo).Str("entered_by", p.EnteredBy).Msg("patient created")
	return p, nil
}

func (s *PatientService) Get(ctx context.Context, hospitalNo string) (*domain.Patient, error) {
	return s.repo.FindByHospitalNo(ctx, hospitalNo)
}

func (s *PatientService) List(ctx context.Context, page ports.PageRequest) (ports.Page[*domain.Patient], error) {
	return s.repo.List(ctx, page.Normalized())
}

// Update merges u into the stored patient; hospital_no never changes.
func (s *PatientService) Update(ctx context.Context, actor *domain.User, hospitalNo string, u domain.PatientUpdate) (*domain.Patient, error) {
	if actor == nil {
		return nil, domain.ErrNotLoggedIn
	}

	p, err := s.repo.FindByHospitalNo(ctx, hospitalNo)
	if err != nil {
		return nil, err
	}

	p.Apply(u)
	p.UpdatedAt = time.Now().UTC()
	p.EnteredBy = actor.Username

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("patient", "update").Inc()
	s.logger.Info().Str("hospital_no", hospitalNo).Str("entered_by", p.EnteredBy).Msg("patient updated")
	return p, nil
}

func (s *PatientService) Delete(ctx context.Context, hospitalNo string) error {
	if err := s.repo.Delete(ctx, hospitalNo); err != nil {
		return err
	}
	metrics.RecordWritesTotal.WithLabelValues("patient", "delete").Inc()
	s.logger.Info().Str("hospital_no", hospitalNo).Msg("patient deleted")
	return nil
}
