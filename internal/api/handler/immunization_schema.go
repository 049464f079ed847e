package handler

import "github.com/comclic/clinic-records/internal/core/domain"

type createImmunizationRequest struct {
	CardNo            string    `json:"card_no" validate:"required,max=64"`
	Name              string    `json:"name" validate:"required"`
	Age               *int      `json:"age" validate:"required,gte=0,lte=150"`
	Gender            string    `json:"gender" validate:"required"`
	VaccineGiven      []string  `json:"vaccine_given" validate:"required,min=1,dive,vaccine"`
	DateOfVaccination *dateTime `json:"date_of_vaccination" validate:"required"`
}

func (r createImmunizationRequest) toDomain() *domain.Immunization {
	return &domain.Immunization{
		CardNo:            r.CardNo,
		Name:              r.Name,
		Age:               *r.Age,
		Gender:            r.Gender,
		VaccineGiven:      fromStrings[domain.Vaccine](r.VaccineGiven),
		DateOfVaccination: r.DateOfVaccination.Time,
	}
}

type updateImmunizationRequest struct {
	Name              *string   `json:"name" validate:"omitempty,min=1"`
	Age               *int      `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender            *string   `json:"gender"`
	VaccineGiven      []string  `json:"vaccine_given" validate:"omitempty,min=1,dive,vaccine"`
	DateOfVaccination *dateTime `json:"date_of_vaccination"`
}

func (r updateImmunizationRequest) toDomain() domain.ImmunizationUpdate {
	return domain.ImmunizationUpdate{
		Name:              r.Name,
		Age:               r.Age,
		Gender:            r.Gender,
		VaccineGiven:      fromStrings[domain.Vaccine](r.VaccineGiven),
		DateOfVaccination: r.DateOfVaccination.ptr(),
	}
}
