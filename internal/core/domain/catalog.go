package domain

// Clinic is one of the community health centres served by the API.
type Clinic string

const (
	ClinicOkeila        Clinic = "Okeila CHC"
	ClinicIgbemo        Clinic = "Igbemo CHC"
	ClinicInfantWelfare Clinic = "Infant Welfare Clinic"
	ClinicStaff         Clinic = "Staff Clinic"
)

// Vaccine is a dose on the national immunization schedule.
type Vaccine string

const (
	VaccineHBV         Vaccine = "HBV (Hepatitis B)"
	VaccineBCG         Vaccine = "BCG (Bacillus Calmette-Guérin)"
	VaccineOPV0        Vaccine = "OPV0 (First/Birth Dose)"
	VaccinePenta1      Vaccine = "Penta1/Rota/PCV1 (First dose)"
	VaccinePenta2      Vaccine = "Penta2/Rota/PCV2 (Second dose)"
	VaccinePenta3      Vaccine = "Penta3/Rota/PCV3 (Third dose)"
	VaccineIPV1        Vaccine = "IPV1 (Inactivated Poliovirus Vaccine - First dose)"
	VaccineIPV2        Vaccine = "IPV2 (Inactivated Poliovirus Vaccine - Second dose)"
	VaccineMeasles1    Vaccine = "Measles1 (First dose of Measles Vaccine)"
	VaccineMeasles2    Vaccine = "Measles2 (Second dose of Measles Vaccine)"
	VaccineYellowFever Vaccine = "Yellow Fever"
	VaccineMenA        Vaccine = "MenA (Meningococcal A Vaccine)"
	VaccineTetanus1    Vaccine = "Tetanus1 (First dose of Tetanus Vaccine)"
	VaccineTetanus2    Vaccine = "Tetanus2 (Second dose of Tetanus Vaccine)"
	VaccineTetanus3    Vaccine = "Tetanus3 (Third dose of Tetanus Vaccine)"
	VaccineTetanus4    Vaccine = "Tetanus4 (Fourth dose of Tetanus Vaccine)"
	VaccineTetanus5    Vaccine = "Tetanus5 (Fifth dose of Tetanus Vaccine)"
)

// Source is the revenue stream a financial record is booked against.
type Source string

const (
	SourceDrugRevolvingFund Source = "Drug Revolving Fund"
	SourceSurgical          Source = "Surgical Service"
	SourceLaboratory        Source = "Laboratory/Radiological Service"
	SourceRegistration      Source = "New Registration/Booking Service"
	SourceFolderRetrieval   Source = "Folder retrieval"
)

var (
	knownClinics = map[Clinic]struct{}{
		ClinicOkeila: {}, ClinicIgbemo: {}, ClinicInfantWelfare: {}, ClinicStaff: {},
	}
	knownVaccines = map[Vaccine]struct{}{
		VaccineHBV: {}, VaccineBCG: {}, VaccineOPV0: {},
		VaccinePenta1: {}, VaccinePenta2: {}, VaccinePenta3: {},
		VaccineIPV1: {}, VaccineIPV2: {},
		VaccineMeasles1: {}, VaccineMeasles2: {},
		VaccineYellowFever: {}, VaccineMenA: {},
		VaccineTetanus1: {}, VaccineTetanus2: {}, VaccineTetanus3: {}, VaccineTetanus4: {}, VaccineTetanus5: {},
	}
	knownSources = map[Source]struct{}{
		SourceDrugRevolvingFund: {}, SourceSurgical: {}, SourceLaboratory: {},
		SourceRegistration: {}, SourceFolderRetrieval: {},
	}
)

func (c Clinic) Valid() bool {
	_, ok := knownClinics[c]
	return ok
}

func (v Vaccine) Valid() bool {
	_, ok := knownVaccines[v]
	return ok
}

func (s Source) Valid() bool {
	_, ok := knownSources[s]
	return ok
}
