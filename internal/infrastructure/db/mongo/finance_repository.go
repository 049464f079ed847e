package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/comclic/clinic-records/internal/core/domain"
	"github.com/comclic/clinic-records/internal/core/ports"
)

type FinanceRepository struct {
	records recordCollection[domain.FinanceRecord]
}

func NewFinanceRepository(db *mongo.Database) *FinanceRepository {
	return &FinanceRepository{records: recordCollection[domain.FinanceRecord]{
		col:      db.Collection(collectionFinances),
		keyField: "record_id",
		notFound: domain.ErrFinanceNotFound,
		idOf:     func(f *domain.FinanceRecord) string { return f.ID },
	}}
}

func (r *FinanceRepository) Create(ctx context.Context, f *domain.FinanceRecord) error {
	doc := *f
	doc.ID = ""
	id, err := r.records.insert(ctx, &doc)
	if err != nil {
		return err
	}
	f.ID = id
	return nil
}

func (r *FinanceRepository) FindByRecordID(ctx context.Context, recordID string) (*domain.FinanceRecord, error) {
	return r.records.find(ctx, recordID)
}

func (r *FinanceRepository) List(ctx context.Context, page ports.PageRequest) (ports.Page[*domain.FinanceRecord], error) {
	return r.records.list(ctx, page)
}

func (r *FinanceRepository) Update(ctx context.Context, f *domain.FinanceRecord) error {
	doc := *f
	doc.ID = ""
	return r.records.update(ctx, f.RecordID, &doc)
}

func (r *FinanceRepository) Delete(ctx context.Context, recordID string) error {
	return r.records.delete(ctx, recordID)
}
