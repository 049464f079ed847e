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

type ImmunizationService struct {
	repo   ports.ImmunizationRepository
	logger zerolog.Logger
}

func NewImmunizationService(repo ports.ImmunizationRepository, logger zerolog.Logger) *ImmunizationService {
	return &ImmunizationService{repo: repo, logger: logger}
}

func (s *ImmunizationService) Create(ctx context.Context, actor *domain.User, im *domain.Immunization) (*domain.Immunization, error) {
	if actor == nil {
		return nil, domain.ErrNotLoggedIn
	}
	if im.CardNo == "" {
		return nil, fmt.Errorf("%w: card_no is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	im.ID = ""
	im.CreatedAt = now
	im.UpdatedAt = now
	im.EnteredBy = actor.Username

	if err := s.repo.Create(ctx, im); err != nil {
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("immunization", "create").Inc()
	s.logger.Info().Str("card_no", im.CardNo).Str("entered_by", im.EnteredBy).Msg("immunization created")
	return im, nil
}

func (s *ImmunizationService) Get(ctx context.Context, cardNo string) (*domain.Immunization, error) {
	return s.repo.FindByCardNo(ctx, cardNo)
}

func (s *ImmunizationService) List(ctx context.Context, page ports.PageRequest) (ports.Page[*domain.Immunization], error) {
	return s.repo.List(ctx, page.Normalized())
}

func (s *ImmunizationService) Update(ctx context.Context, actor *domain.User, cardNo string, u domain.ImmunizationUpdate) (*domain.Immunization, error) {
	if actor == nil {
		return nil, domain.ErrNotLoggedIn
	}

	im, err := s.repo.FindByCardNo(ctx, cardNo)
	if err != nil {
		return nil, err
	}

	im.Apply(u)
	im.UpdatedAt = time.Now().UTC()
	im.EnteredBy = actor.Username

	if err := s.repo.Update(ctx, im); err != nil {
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("immunization", "update").Inc()
	s.logger.Info().Str("card_no", cardNo).Str("entered_by", im.EnteredBy).Msg("immunization updated")
	return im, nil
}

func (s *ImmunizationService) Delete(ctx context.Context, cardNo string) error {
	if err := s.repo.Delete(ctx, cardNo); err != nil {
		return err
	}
	metrics.RecordWritesTotal.WithLabelValues("immunization", "delete").Inc()
	s.logger.Info().Str("card_no", cardNo).Msg("immunization deleted")
	return nil
}
