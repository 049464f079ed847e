package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/comclic/clinic-records/internal/core/domain"
	"github.com/comclic/clinic-records/internal/core/ports"
	"github.com/comclic/clinic-records/internal/pkg/metrics"
)

// FinanceService implements financial record CRUD, including the rule that
// only doctors may mark a record as reviewed.
type FinanceService struct {
	repo   ports.FinanceRepository
	logger zerolog.Logger
}

func NewFinanceService(repo ports.FinanceRepository, logger zerolog.Logger) *FinanceService {
	return &FinanceService{repo: repo, logger: logger}
}

// Create generates a record_id when the caller did not supply one.
func (s *FinanceService) Create(ctx context.Context, actor *domain.User, f *domain.FinanceRecord) (*domain.FinanceRecord, error) {
	if actor == nil {
		return nil, domain.ErrNotLoggedIn
	}
	if f.ReviewedByDoctor {
		if _, err := Require(actor, Doctors); err != nil {
			return nil, fmt.Errorf("%w: only doctors can review financial records", domain.ErrForbidden)
		}
	}
	if f.RecordID == "" {
		f.RecordID = uuid.NewString()
	}

	now := time.Now().UTC()
	f.ID = ""
	f.CreatedAt = now
	f.UpdatedAt = now
	f.EnteredBy = actor.Username

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("finance", "create").Inc()
	s.logger.Info().Str("record_id", f.RecordID).Str("entered_by", f.EnteredBy).Msg("financial record created")
	return f, nil
}

func (s *FinanceService) Get(ctx context.Context, recordID string) (*domain.FinanceRecord, error) {
	return s.repo.FindByRecordID(ctx, recordID)
}

func (s *FinanceService) List(ctx context.Context, page ports.PageRequest) (ports.Page[*domain.FinanceRecord], error) {
	return s.repo.List(ctx, page.Normalized())
}

// Update applies the field-level override before touching the store: setting
// reviewed_by_doctor requires the Doctor role even though accountants pass
// the route gate.
func (s *FinanceService) Update(ctx context.Context, actor *domain.User, recordID string, u domain.FinanceUpdate) (*domain.FinanceRecord, error) {
	if actor == nil {
		return nil, domain.ErrNotLoggedIn
	}
	if u.MarksReviewed() {
		if _, err := Require(actor, Doctors); err != nil {
			return nil, fmt.Errorf("%w: only doctors can review financial records", domain.ErrForbidden)
		}
	}

	f, err := s.repo.FindByRecordID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	f.Apply(u)
	f.UpdatedAt = time.Now().UTC()
	f.EnteredBy = actor.Username

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("finance", "update").Inc()
	s.logger.Info().Str("record_id", recordID).Str("entered_by", f.EnteredBy).Msg("financial record updated")
	return f, nil
}

func (s *FinanceService) Delete(ctx context.Context, recordID string) error {
	if err := s.repo.Delete(ctx, recordID); err != nil {
		return err
	}
	metrics.RecordWritesTotal.WithLabelValues("finance", "delete").Inc()
	s.logger.Info().Str("record_id", recordID).Msg("financial record deleted")
	return nil
}
