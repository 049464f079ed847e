package handler

import (
	"context"
	"errors"

	"github.com/comclic/clinic-records/internal/core/domain"
	"github.com/comclic/clinic-records/internal/core/ports"
)

var errNotStubbed = errors.New("not stubbed")

type stubAuthService struct {
	registerFn       func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn          func(ctx context.Context, identifier, password string) (*domain.User, string, error)
	logoutFn         func(ctx context.Context, token string) error
	forgotPasswordFn func(ctx context.Context, email string) error
	resetPasswordFn  func(ctx context.Context, token, password string) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if s.registerFn == nil {
		return nil, errNotStubbed
	}
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, identifier, password string) (*domain.User, string, error) {
	if s.loginFn == nil {
		return nil, "", errNotStubbed
	}
	return s.loginFn(ctx, identifier, password)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	if s.logoutFn == nil {
		return errNotStubbed
	}
	return s.logoutFn(ctx, token)
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.User, error) {
	return nil, errNotStubbed
}

func (s *stubAuthService) ForgotPassword(ctx context.Context, email string) error {
	if s.forgotPasswordFn == nil {
		return errNotStubbed
	}
	return s.forgotPasswordFn(ctx, email)
}

func (s *stubAuthService) ResetPassword(ctx context.Context, token, password string) error {
	if s.resetPasswordFn == nil {
		return errNotStubbed
	}
	return s.resetPasswordFn(ctx, token, password)
}

type stubPatientService struct {
	createFn func(ctx context.Context, actor *domain.User, p *domain.Patient) (*domain.Patient, error)
	listFn   func(ctx context.Context, page ports.PageRequest) (ports.Page[*domain.Patient], error)
	updateFn func(ctx context.Context, actor *domain.User, key string, u domain.PatientUpdate) (*domain.Patient, error)
}

func (s *stubPatientService) Create(ctx context.Context, actor *domain.User, p *domain.Patient) (*domain.Patient, error) {
	return s.createFn(ctx, actor, p)
}

func (s *stubPatientService) Get(context.Context, string) (*domain.Patient, error) {
	return nil, domain.ErrPatientNotFound
}

func (s *stubPatientService) List(ctx context.Context, page ports.PageRequest) (ports.Page[*domain.Patient], error) {
	return s.listFn(ctx, page)
}

func (s *stubPatientService) Update(ctx context.Context, actor *domain.User, key string, u domain.PatientUpdate) (*domain.Patient, error) {
	return s.updateFn(ctx, actor, key, u)
}

func (s *stubPatientService) Delete(context.Context, string) error {
	return domain.ErrPatientNotFound
}

type stubFinanceService struct {
	createFn func(ctx context.Context, actor *domain.User, f *domain.FinanceRecord) (*domain.FinanceRecord, error)
	updateFn func(ctx context.Context, actor *domain.User, key string, u domain.FinanceUpdate) (*domain.FinanceRecord, error)
}

func (s *stubFinanceService) Create(ctx context.Context, actor *domain.User, f *domain.FinanceRecord) (*domain.FinanceRecord, error) {
	return s.createFn(ctx, actor, f)
}

func (s *stubFinanceService) Get(context.Context, string) (*domain.FinanceRecord, error) {
	return nil, domain.ErrFinanceNotFound
}

func (s *stubFinanceService) List(context.Context, ports.PageRequest) (ports.Page[*domain.FinanceRecord], error) {
	return ports.Page[*domain.FinanceRecord]{}, nil
}

func (s *stubFinanceService) Update(ctx context.Context, actor *domain.User, key string, u domain.FinanceUpdate) (*domain.FinanceRecord, error) {
	return s.updateFn(ctx, actor, key, u)
}

func (s *stubFinanceService) Delete(context.Context, string) error {
	return nil
}
