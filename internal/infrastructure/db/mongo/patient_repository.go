package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/comclic/clinic-records/internal/core/domain"
	"github.com/comclic/clinic-records/internal/core/ports"
)

type PatientRepository struct {
	records recordCollection[domain.Patient]
}

func NewPatientRepository(db *mongo.Database) *PatientRepository {
	return &PatientRepository{records: recordCollection[domain.Patient]{
		col:      db.Collection(collectionPatients),
		keyField: "hospital_no",
		notFound: domain.ErrPatientNotFound,
		idOf:     func(p *domain.Patient) string { return p.ID },
	}}
}

// Create inserts p and sets p.ID to the generated ObjectID.
func (r *PatientRepository) Create(ctx context.Context, p *domain.Patient) error {
	doc := *p
	doc.ID = ""
	id, err := r.records.insert(ctx, &doc)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *PatientRepository) FindByHospitalNo(ctx context.Context, hospitalNo string) (*domain.Patient, error) {
	return r.records.find(ctx, hospitalNo)
}

func (r *PatientRepository) List(ctx context.Context, page ports.PageRequest) (ports.Page[*domain.Patient], error) {
	return r.records.list(ctx, page)
}

func (r *PatientRepository) Update(ctx context.Context, p *domain.Patient) error {
	doc := *p
	doc.ID = ""
	return r.records.update(ctx, p.HospitalNo, &doc)
}

func (r *PatientRepository) Delete(ctx context.Context, hospitalNo string) error {
	return r.records.delete(ctx, hospitalNo)
}
