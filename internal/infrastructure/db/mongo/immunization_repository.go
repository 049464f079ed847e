package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/comclic/clinic-records/internal/core/domain"
	"github.com/comclic/clinic-records/internal/core/ports"
)

type ImmunizationRepository struct {
	records recordCollection[domain.Immunization]
}

func NewImmunizationRepository(db *mongo.Database) *ImmunizationRepository {
	return &ImmunizationRepository{records: recordCollection[domain.Immunization]{
		col:      db.Collection(collectionImmunizations),
		keyField: "card_no",
		notFound: domain.ErrImmunizationNotFound,
		idOf:     func(im *domain.Immunization) string { return im.ID },
	}}
}

func (r *ImmunizationRepository) Create(ctx context.Context, im *domain.Immunization) error {
	doc := *im
	doc.ID = ""
	id, err := r.records.insert(ctx, &doc)
	if err != nil {
		return err
	}
	im.ID = id
	return nil
}

func (r *ImmunizationRepository) FindByCardNo(ctx context.Context, cardNo string) (*domain.Immunization, error) {
	return r.records.find(ctx, cardNo)
}

func (r *ImmunizationRepository) List(ctx context.Context, page ports.PageRequest) (ports.Page[*domain.Immunization], error) {
	return r.records.list(ctx, page)
}

func (r *ImmunizationRepository) Update(ctx context.Context, im *domain.Immunization) error {
	doc := *im
	doc.ID = ""
	return r.records.update(ctx, im.CardNo, &doc)
}

func (r *ImmunizationRepository) Delete(ctx context.Context, cardNo string) error {
	return r.records.delete(ctx, cardNo)
}
