package service

import (
	"context"
	"time"

	"github.com/comclic/clinic-records/internal/core/domain"
	"github.com/comclic/clinic-records/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Account stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[string]*domain.User // by username
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	clone.Roles = append([]domain.Role(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	c := cloneUser(user)
	c.ID = "id-" + user.Username
	r.users[c.Username] = c
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByResetToken(_ context.Context, token string) (*domain.User, error) {
	for _, u := range r.users {
		if token != "" && u.ResetToken == token {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrResetTokenNotFound
}

func (r *stubUserRepo) SetResetToken(_ context.Context, username, token string, expires time.Time) error {
	u, ok := r.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.ResetToken = token
	u.ResetExpires = expires
	return nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, username, hash string) error {
	u, ok := r.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	u.ResetToken = ""
	u.ResetExpires = time.Time{}
	return nil
}

type stubBlacklist struct {
	revoked map[string]time.Time
}

func newStubBlacklist() *stubBlacklist {
	return &stubBlacklist{revoked: make(map[string]time.Time)}
}

func (b *stubBlacklist) Revoke(_ context.Context, tokenID, _ string, expiresAt time.Time) error {
	b.revoked[tokenID] = expiresAt
	return nil
}

func (b *stubBlacklist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := b.revoked[tokenID]
	return ok, nil
}

type stubSessions struct {
	tokens map[string]string
	ttls   map[string]time.Duration
}

func newStubSessions() *stubSessions {
	return &stubSessions{tokens: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (s *stubSessions) Store(_ context.Context, username, token string, ttl time.Duration) error {
	s.tokens[username] = token
	s.ttls[username] = ttl
	return nil
}

func (s *stubSessions) Current(_ context.Context, username string) (string, bool, error) {
	tok, ok := s.tokens[username]
	return tok, ok, nil
}

func (s *stubSessions) Drop(_ context.Context, username string) error {
	delete(s.tokens, username)
	return nil
}

type stubMailQueue struct {
	sent []ports.MailMessage
}

func (q *stubMailQueue) Enqueue(msg ports.MailMessage) {
	q.sent = append(q.sent, msg)
}

// ---------------------------------------------------------------------------
// Record stubs
// ---------------------------------------------------------------------------

type stubPatientRepo struct {
	byKey map[string]*domain.Patient
	order []string
}

func newStubPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{byKey: make(map[string]*domain.Patient)}
}

func (r *stubPatientRepo) Create(_ context.Context, p *domain.Patient) error {
	if _, ok := r.byKey[p.HospitalNo]; ok {
		return domain.ErrDuplicateKey
	}
	p.ID = "oid-" + p.HospitalNo
	clone := *p
	r.byKey[p.HospitalNo] = &clone
	r.order = append(r.order, p.HospitalNo)
	return nil
}

func (r *stubPatientRepo) FindByHospitalNo(_ context.Context, hospitalNo string) (*domain.Patient, error) {
	p, ok := r.byKey[hospitalNo]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPatientRepo) List(_ context.Context, page ports.PageRequest) (ports.Page[*domain.Patient], error) {
	var out ports.Page[*domain.Patient]
	for _, k := range r.order {
		clone := *r.byKey[k]
		out.Items = append(out.Items, &clone)
	}
	return out, nil
}

func (r *stubPatientRepo) Update(_ context.Context, p *domain.Patient) error {
	if _, ok := r.byKey[p.HospitalNo]; !ok {
		return domain.ErrPatientNotFound
	}
	clone := *p
	r.byKey[p.HospitalNo] = &clone
	return nil
}

func (r *stubPatientRepo) Delete(_ context.Context, hospitalNo string) error {
	if _, ok := r.byKey[hospitalNo]; !ok {
		return domain.ErrPatientNotFound
	}
	delete(r.byKey, hospitalNo)
	return nil
}

type stubImmunizationRepo struct {
	byKey map[string]*domain.Immunization
}

func newStubImmunizationRepo() *stubImmunizationRepo {
	return &stubImmunizationRepo{byKey: make(map[string]*domain.Immunization)}
}

func (r *stubImmunizationRepo) Create(_ context.Context, im *domain.Immunization) error {
	if _, ok := r.byKey[im.CardNo]; ok {
		return domain.ErrDuplicateKey
	}
	clone := *im
	r.byKey[im.CardNo] = &clone
	return nil
}

func (r *stubImmunizationRepo) FindByCardNo(_ context.Context, cardNo string) (*domain.Immunization, error) {
	im, ok := r.byKey[cardNo]
	if !ok {
		return nil, domain.ErrImmunizationNotFound
	}
	clone := *im
	return &clone, nil
}

func (r *stubImmunizationRepo) List(_ context.Context, _ ports.PageRequest) (ports.Page[*domain.Immunization], error) {
	var out ports.Page[*domain.Immunization]
	for _, im := range r.byKey {
		clone := *im
		out.Items = append(out.Items, &clone)
	}
	return out, nil
}

func (r *stubImmunizationRepo) Update(_ context.Context, im *domain.Immunization) error {
	if _, ok := r.byKey[im.CardNo]; !ok {
		return domain.ErrImmunizationNotFound
	}
	clone := *im
	r.byKey[im.CardNo] = &clone
	return nil
}

func (r *stubImmunizationRepo) Delete(_ context.Context, cardNo string) error {
	if _, ok := r.byKey[cardNo]; !ok {
		return domain.ErrImmunizationNotFound
	}
	delete(r.byKey, cardNo)
	return nil
}

type stubFinanceRepo struct {
	byKey map[string]*domain.FinanceRecord
}

func newStubFinanceRepo() *stubFinanceRepo {
	return &stubFinanceRepo{byKey: make(map[string]*domain.FinanceRecord)}
}

func (r *stubFinanceRepo) Create(_ context.Context, f *domain.FinanceRecord) error {
	if _, ok := r.byKey[f.RecordID]; ok {
		return domain.ErrDuplicateKey
	}
	clone := *f
	r.byKey[f.RecordID] = &clone
	return nil
}

func (r *stubFinanceRepo) FindByRecordID(_ context.Context, recordID string) (*domain.FinanceRecord, error) {
	f, ok := r.byKey[recordID]
	if !ok {
		return nil, domain.ErrFinanceNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *stubFinanceRepo) List(_ context.Context, _ ports.PageRequest) (ports.Page[*domain.FinanceRecord], error) {
	var out ports.Page[*domain.FinanceRecord]
	for _, f := range r.byKey {
		clone := *f
		out.Items = append(out.Items, &clone)
	}
	return out, nil
}

func (r *stubFinanceRepo) Update(_ context.Context, f *domain.FinanceRecord) error {
	if _, ok := r.byKey[f.RecordID]; !ok {
		return domain.ErrFinanceNotFound
	}
	clone := *f
	r.byKey[f.RecordID] = &clone
	return nil
}

func (r *stubFinanceRepo) Delete(_ context.Context, recordID string) error {
	if _, ok := r.byKey[recordID]; !ok {
		return domain.ErrFinanceNotFound
	}
	delete(r.byKey, recordID)
	return nil
}
