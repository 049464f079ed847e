package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/comclic/clinic-records/internal/core/domain"
	"github.com/comclic/clinic-records/internal/core/ports"
)

// recordCollection holds the CRUD plumbing shared by the clinic record
// collections. Documents are addressed by a unique business key; _id is a
// server-generated ObjectID that doubles as the pagination cursor.
type recordCollection[T any] struct {
	col      *mongo.Collection
	keyField string
	notFound error
	idOf     func(*T) string
}

func (c recordCollection[T]) insert(ctx context.Context, doc *T) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrDuplicateKey
		}
		return "", fmt.Errorf("insert into %s: %w", c.col.Name(), err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert into %s: unexpected id type %T", c.col.Name(), res.InsertedID)
	}
	return oid.Hex(), nil
}

func (c recordCollection[T]) find(ctx context.Context, key string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc T
	if err := c.col.FindOne(ctx, bson.M{c.keyField: key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, c.notFound
		}
		return nil, fmt.Errorf("find in %s: %w", c.col.Name(), err)
	}
	return &doc, nil
}

// list returns up to page.Limit documents with _id greater than the cursor,
// in insertion order. One extra document is fetched to detect a next page.
func (c recordCollection[T]) list(ctx context.Context, page ports.PageRequest) (ports.Page[*T], error) {
	page = page.Normalized()

	filter := bson.M{}
	if page.Cursor != "" {
		after, err := primitive.ObjectIDFromHex(page.Cursor)
		if err != nil {
			return ports.Page[*T]{}, fmt.Errorf("%w: invalid cursor", domain.ErrValidation)
		}
		filter["_id"] = bson.M{"$gt": after}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(page.Limit + 1))

	cur, err := c.col.Find(ctx, filter, opts)
	if err != nil {
		return ports.Page[*T]{}, fmt.Errorf("list %s: %w", c.col.Name(), err)
	}
	defer cur.Close(ctx)

	items := make([]*T, 0, page.Limit)
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return ports.Page[*T]{}, fmt.Errorf("decode %s: %w", c.col.Name(), err)
		}
		items = append(items, &doc)
	}
	if err := cur.Err(); err != nil {
		return ports.Page[*T]{}, fmt.Errorf("list %s: %w", c.col.Name(), err)
	}

	var out ports.Page[*T]
	if len(items) > page.Limit {
		items = items[:page.Limit]
		out.NextCursor = c.idOf(items[len(items)-1])
	}
	out.Items = items
	return out, nil
}

// update overwrites the stored fields of the document matching key. doc must
// marshal without an _id.
func (c recordCollection[T]) update(ctx context.Context, key string, doc *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.col.UpdateOne(ctx, bson.M{c.keyField: key}, bson.M{"$set": doc})
	if err != nil {
		return fmt.Errorf("update %s: %w", c.col.Name(), err)
	}
	if res.MatchedCount == 0 {
		return c.notFound
	}
	return nil
}

func (c recordCollection[T]) delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.col.DeleteOne(ctx, bson.M{c.keyField: key})
	if err != nil {
		return fmt.Errorf("delete from %s: %w", c.col.Name(), err)
	}
	if res.DeletedCount == 0 {
		return c.notFound
	}
	return nil
}
