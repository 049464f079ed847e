package domain

import "time"

// Immunization records the vaccines given against a child's immunization card.
type Immunization struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	CardNo            string    `json:"card_no" bson:"card_no"`
	Name              string    `json:"name" bson:"name"`
	Age               int       `json:"age" bson:"age"`
	Gender            string    `json:"gender" bson:"gender"`
	VaccineGiven      []Vaccine `json:"vaccine_given" bson:"vaccine_given"`
	DateOfVaccination time.Time `json:"date_of_vaccination" bson:"date_of_vaccination"`
	EnteredBy         string    `json:"entered_by" bson:"entered_by"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" bson:"updated_at"`
}

type ImmunizationUpdate struct {
	Name              *string
	Age               *int
	Gender            *string
	VaccineGiven      []Vaccine
	DateOfVaccination *time.Time
}

func (im *Immunization) Apply(u ImmunizationUpdate) {
	setString(&im.Name, u.Name)
	if u.Age != nil {
		im.Age = *u.Age
	}
	setString(&im.Gender, u.Gender)
	if u.VaccineGiven != nil {
		im.VaccineGiven = u.VaccineGiven
	}
	if u.DateOfVaccination != nil {
		im.DateOfVaccination = *u.DateOfVaccination
	}
}
