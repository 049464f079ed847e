package domain

import "time"

// Patient is a single visit record keyed by the clinic's hospital number.
type Patient struct {
	ID                    string    `json:"id" bson:"_id,omitempty"`
	HospitalNo            string    `json:"hospital_no" bson:"hospital_no"`
	FirstName             string    `json:"first_name" bson:"first_name"`
	LastName              string    `json:"last_name" bson:"last_name"`
	Age                   int       `json:"age" bson:"age"`
	Gender                string    `json:"gender" bson:"gender"`
	ReasonForVisit        string    `json:"reason_for_visit,omitempty" bson:"reason_for_visit"`
	Complaint             string    `json:"complaint" bson:"complaint"`
	LastVisit             time.Time `json:"last_visit" bson:"last_visit"`
	ProvisionalDiagnosis  string    `json:"provisional_diagnosis" bson:"provisional_diagnosis"`
	DifferentialDiagnosis string    `json:"differential_diagnosis,omitempty" bson:"differential_diagnosis"`
	Investigations        string    `json:"investigations,omitempty" bson:"investigations"`
	Treatment             string    `json:"treatment" bson:"treatment"`
	Referral              bool      `json:"referral" bson:"referral"`
	Clinic                []Clinic  `json:"clinic" bson:"clinic"`
	EnteredBy             string    `json:"entered_by" bson:"entered_by"`
	CreatedAt             time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" bson:"updated_at"`
}

// PatientUpdate carries the fields a caller wants changed. Nil means keep.
// HospitalNo is deliberately absent: the business key never changes.
type PatientUpdate struct {
	FirstName             *string
	LastName              *string
	Age                   *int
	Gender                *string
	ReasonForVisit        *string
	Complaint             *string
	LastVisit             *time.Time
	ProvisionalDiagnosis  *string
	DifferentialDiagnosis *string
	Investigations        *string
	Treatment             *string
	Referral              *bool
	Clinic                []Clinic
}

// Apply merges u into p.
func (p *Patient) Apply(u PatientUpdate) {
	setString(&p.FirstName, u.FirstName)
	setString(&p.LastName, u.LastName)
	if u.Age != nil {
		p.Age = *u.Age
	}
	setString(&p.Gender, u.Gender)
	setString(&p.ReasonForVisit, u.ReasonForVisit)
	setString(&p.Complaint, u.Complaint)
	if u.LastVisit != nil {
		p.LastVisit = *u.LastVisit
	}
	setString(&p.ProvisionalDiagnosis, u.ProvisionalDiagnosis)
	setString(&p.DifferentialDiagnosis, u.DifferentialDiagnosis)
	setString(&p.Investigations, u.Investigations)
	setString(&p.Treatment, u.Treatment)
	if u.Referral != nil {
		p.Referral = *u.Referral
	}
	if u.Clinic != nil {
		p.Clinic = u.Clinic
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
