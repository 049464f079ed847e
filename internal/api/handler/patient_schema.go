package handler

import "github.com/comclic/clinic-records/internal/core/domain"

type createPatientRequest struct {
	HospitalNo            string    `json:"hospital_no" validate:"required,max=64"`
	FirstName             string    `json:"first_name" validate:"required"`
	LastName              string    `json:"last_name" validate:"required"`
	Age                   *int      `json:"age" validate:"required,gte=0,lte=150"`
	Gender                string    `json:"gender" validate:"required"`
	ReasonForVisit        string    `json:"reason_for_visit"`
	Complaint             string    `json:"complaint" validate:"required"`
	LastVisit             *dateTime `json:"last_visit" validate:"required"`
	ProvisionalDiagnosis  string    `json:"provisional_diagnosis" validate:"required"`
	DifferentialDiagnosis string    `json:"differential_diagnosis"`
	Investigations        string    `json:"investigations"`
	Treatment             string    `json:"treatment" validate:"required"`
	Referral              bool      `json:"referral"`
	Clinic                []string  `json:"clinic" validate:"required,min=1,dive,clinic"`
}

func (r createPatientRequest) toDomain() *domain.Patient {
	return &domain.Patient{
		HospitalNo:            r.HospitalNo,
		FirstName:             r.FirstName,
		LastName:              r.LastName,
		Age:                   *r.Age,
		Gender:                r.Gender,
		ReasonForVisit:        r.ReasonForVisit,
		Complaint:             r.Complaint,
		LastVisit:             r.LastVisit.Time,
		ProvisionalDiagnosis:  r.ProvisionalDiagnosis,
		DifferentialDiagnosis: r.DifferentialDiagnosis,
		Investigations:        r.Investigations,
		Treatment:             r.Treatment,
		Referral:              r.Referral,
		Clinic:                fromStrings[domain.Clinic](r.Clinic),
	}
}

// updatePatientRequest has no hospital_no: the key comes from the path and
// never changes.
type updatePatientRequest struct {
	FirstName             *string   `json:"first_name" validate:"omitempty,min=1"`
	LastName              *string   `json:"last_name" validate:"omitempty,min=1"`
	Age                   *int      `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender                *string   `json:"gender"`
	ReasonForVisit        *string   `json:"reason_for_visit"`
	Complaint             *string   `json:"complaint"`
	LastVisit             *dateTime `json:"last_visit"`
	ProvisionalDiagnosis  *string   `json:"provisional_diagnosis"`
	DifferentialDiagnosis *string   `json:"differential_diagnosis"`
	Investigations        *string   `json:"investigations"`
	Treatment             *string   `json:"treatment"`
	Referral              *bool     `json:"referral"`
	Clinic                []string  `json:"clinic" validate:"omitempty,min=1,dive,clinic"`
}

func (r updatePatientRequest) toDomain() domain.PatientUpdate {
	return domain.PatientUpdate{
		FirstName:             r.FirstName,
		LastName:              r.LastName,
		Age:                   r.Age,
		Gender:                r.Gender,
		ReasonForVisit:        r.ReasonForVisit,
		Complaint:             r.Complaint,
		LastVisit:             r.LastVisit.ptr(),
		ProvisionalDiagnosis:  r.ProvisionalDiagnosis,
		DifferentialDiagnosis: r.DifferentialDiagnosis,
		Investigations:        r.Investigations,
		Treatment:             r.Treatment,
		Referral:              r.Referral,
		Clinic:                fromStrings[domain.Clinic](r.Clinic),
	}
}
