package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comclic/clinic-records/internal/core/domain"
	"github.com/comclic/clinic-records/internal/core/ports"
)

const validPatient = `{
	"hospital_no": "HN-001",
	"first_name": "Ada",
	"last_name": "Bello",
	"age": 0,
	"gender": "Female",
	"complaint": "fever",
	"last_visit": "2024-03-01",
	"provisional_diagnosis": "malaria",
	"treatment": "ACT",
	"clinic": ["Okeila CHC"]
}`

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, roles ...domain.Role) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user", &domain.User{Username: "drokoro", Roles: roles})
	return c
}

func TestPatientHandler_Create(t *testing.T) {
	e := newTestEcho()
	stub := &stubPatientService{
		createFn: func(_ context.Context, actor *domain.User, p *domain.Patient) (*domain.Patient, error) {
			if actor.Username != "drokoro" {
				t.Fatalf("unexpected actor %q", actor.Username)
			}
			if p.Age != 0 || p.Clinic[0] != domain.ClinicOkeila {
				t.Fatalf("unexpected patient: %+v", p)
			}
			if !p.LastVisit.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
				t.Fatalf("unexpected last_visit %v", p.LastVisit)
			}
			p.EnteredBy = actor.Username
			return p, nil
		},
	}
	handler := NewPatientHandler(stub)

	rec := httptest.NewRecorder()
	c := authedContext(e, jsonRequest(http.MethodPost, "/api/patients", validPatient), rec, domain.RoleDoctor)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Data domain.Patient `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Data.HospitalNo != "HN-001" || resp.Data.EnteredBy != "drokoro" {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
}

func TestPatientHandler_Create_Validation(t *testing.T) {
	cases := map[string]string{
		"missing age":    `{"hospital_no":"HN-1","first_name":"A","last_name":"B","gender":"F","complaint":"c","last_visit":"2024-03-01","provisional_diagnosis":"d","treatment":"t","clinic":["Okeila CHC"]}`,
		"unknown clinic": `{"hospital_no":"HN-1","first_name":"A","last_name":"B","age":3,"gender":"F","complaint":"c","last_visit":"2024-03-01","provisional_diagnosis":"d","treatment":"t","clinic":["Mars Clinic"]}`,
		"no clinic":      `{"hospital_no":"HN-1","first_name":"A","last_name":"B","age":3,"gender":"F","complaint":"c","last_visit":"2024-03-01","provisional_diagnosis":"d","treatment":"t","clinic":[]}`,
		"missing date":   `{"hospital_no":"HN-1","first_name":"A","last_name":"B","age":3,"gender":"F","complaint":"c","provisional_diagnosis":"d","treatment":"t","clinic":["Okeila CHC"]}`,
		"negative age":   `{"hospital_no":"HN-1","first_name":"A","last_name":"B","age":-1,"gender":"F","complaint":"c","last_visit":"2024-03-01","provisional_diagnosis":"d","treatment":"t","clinic":["Okeila CHC"]}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			e := newTestEcho()
			handler := NewPatientHandler(&stubPatientService{})
			c := authedContext(e, jsonRequest(http.MethodPost, "/api/patients", body), httptest.NewRecorder(), domain.RoleDoctor)

			if err := handler.Create(c); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestPatientHandler_Create_BadDate(t *testing.T) {
	e := newTestEcho()
	handler := NewPatientHandler(&stubPatientService{})
	body := `{"hospital_no":"HN-1","last_visit":"yesterday"}`
	c := authedContext(e, jsonRequest(http.MethodPost, "/api/patients", body), httptest.NewRecorder(), domain.RoleDoctor)

	var he *echo.HTTPError
	if err := handler.Create(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestPatientHandler_Create_RequiresUser(t *testing.T) {
	e := newTestEcho()
	handler := NewPatientHandler(&stubPatientService{})
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/patients", validPatient), httptest.NewRecorder())

	if err := handler.Create(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestPatientHandler_List_Pagination(t *testing.T) {
	e := newTestEcho()
	var got ports.PageRequest
	stub := &stubPatientService{
		listFn: func(_ context.Context, page ports.PageRequest) (ports.Page[*domain.Patient], error) {
			got = page
			return ports.Page[*domain.Patient]{
				Items:      []*domain.Patient{{HospitalNo: "HN-1"}},
				NextCursor: "65f000000000000000000001",
			}, nil
		},
	}
	handler := NewPatientHandler(stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/patients?cursor=abc&limit=500", nil)
	if err := handler.List(authedContext(e, req, rec, domain.RoleNurse)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Cursor != "abc" || got.Limit != ports.MaxPageLimit {
		t.Fatalf("unexpected page request: %+v", got)
	}

	var resp struct {
		Data struct {
			Items      []domain.Patient `json:"items"`
			NextCursor string           `json:"next_cursor"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data.Items) != 1 || resp.Data.NextCursor != "65f000000000000000000001" {
		t.Fatalf("unexpected page: %+v", resp.Data)
	}
}

func TestPatientHandler_List_EmptyIsArray(t *testing.T) {
	e := newTestEcho()
	stub := &stubPatientService{
		listFn: func(context.Context, ports.PageRequest) (ports.Page[*domain.Patient], error) {
			return ports.Page[*domain.Patient]{}, nil
		},
	}
	handler := NewPatientHandler(stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	if err := handler.List(authedContext(e, req, rec, domain.RoleDoctor)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Data struct {
			Items json.RawMessage `json:"items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if string(resp.Data.Items) != "[]" {
		t.Fatalf("expected empty array, got %s", resp.Data.Items)
	}
}

func TestPatientHandler_List_BadLimit(t *testing.T) {
	e := newTestEcho()
	handler := NewPatientHandler(&stubPatientService{})
	req := httptest.NewRequest(http.MethodGet, "/api/patients?limit=zero", nil)

	if err := handler.List(authedContext(e, req, httptest.NewRecorder(), domain.RoleDoctor)); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestPatientHandler_Update_UsesPathKey(t *testing.T) {
	e := newTestEcho()
	stub := &stubPatientService{
		updateFn: func(_ context.Context, _ *domain.User, key string, u domain.PatientUpdate) (*domain.Patient, error) {
			if key != "HN-001" {
				t.Fatalf("unexpected key %q", key)
			}
			if u.Age == nil || *u.Age != 31 || u.FirstName != nil {
				t.Fatalf("unexpected update: %+v", u)
			}
			return &domain.Patient{HospitalNo: key, Age: *u.Age}, nil
		},
	}
	handler := NewPatientHandler(stub)

	rec := httptest.NewRecorder()
	c := authedContext(e, jsonRequest(http.MethodPut, "/api/patients/HN-001", `{"age":31,"hospital_no":"HN-999"}`), rec, domain.RoleDoctor)
	c.SetParamNames("hospital_no")
	c.SetParamValues("HN-001")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPatientHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	handler := NewPatientHandler(&stubPatientService{})
	c := authedContext(e, httptest.NewRequest(http.MethodGet, "/api/patients/missing", nil), httptest.NewRecorder(), domain.RoleDoctor)
	c.SetParamNames("hospital_no")
	c.SetParamValues("missing")

	if err := handler.Get(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFinanceHandler_Create(t *testing.T) {
	e := newTestEcho()
	stub := &stubFinanceService{
		createFn: func(_ context.Context, _ *domain.User, f *domain.FinanceRecord) (*domain.FinanceRecord, error) {
			if f.DailyTotalAmount != 1250.5 || f.Source[0] != domain.SourceLaboratory {
				t.Fatalf("unexpected record: %+v", f)
			}
			f.RecordID = "generated"
			return f, nil
		},
	}
	handler := NewFinanceHandler(stub)

	body := `{"record_officer":"Tolu","payment_type":"cash","source":["Laboratory/Radiological Service"],"daily_total_amount":1250.5}`
	rec := httptest.NewRecorder()
	if err := handler.Create(authedContext(e, jsonRequest(http.MethodPost, "/api/finances", body), rec, domain.RoleAccountant)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestFinanceHandler_Create_UnknownSource(t *testing.T) {
	e := newTestEcho()
	handler := NewFinanceHandler(&stubFinanceService{})

	body := `{"record_officer":"Tolu","payment_type":"cash","source":["Bake Sale"],"daily_total_amount":10}`
	c := authedContext(e, jsonRequest(http.MethodPost, "/api/finances", body), httptest.NewRecorder(), domain.RoleAccountant)

	if err := handler.Create(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestFinanceHandler_Update_ForbiddenReview(t *testing.T) {
	e := newTestEcho()
	stub := &stubFinanceService{
		updateFn: func(_ context.Context, _ *domain.User, _ string, u domain.FinanceUpdate) (*domain.FinanceRecord, error) {
			if !u.MarksReviewed() {
				t.Fatal("expected review flag to reach the service")
			}
			return nil, domain.ErrForbidden
		},
	}
	handler := NewFinanceHandler(stub)

	c := authedContext(e, jsonRequest(http.MethodPut, "/api/finances/r1", `{"reviewed_by_doctor":true}`), httptest.NewRecorder(), domain.RoleAccountant)
	c.SetParamNames("record_id")
	c.SetParamValues("r1")

	if err := handler.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
