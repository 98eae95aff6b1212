package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/errors"
)

// collection is the single generic implementation of the document repository
// contract. It is instantiated once per entity type with the entity/model
// mapper pair and the entity-specific sentinel errors.
type collection[E any, M any] struct {
	coll     *mongo.Collection
	toModel  func(*E) *M
	toEntity func(*M) *E
	setID    func(*E, string)

	// notFound is returned for missing (or malformed) identifiers.
	notFound error
	// duplicate, when non-nil, is returned for unique index violations.
	duplicate error
}

func newCollection[E any, M any](
	coll *mongo.Collection,
	toModel func(*E) *M,
	toEntity func(*M) *E,
	setID func(*E, string),
	notFound error,
	duplicate error,
) *collection[E, M] {
	return &collection[E, M]{
		coll:      coll,
		toModel:   toModel,
		toEntity:  toEntity,
		setID:     setID,
		notFound:  notFound,
		duplicate: duplicate,
	}
}

// idFilter parses the opaque identifier into an ObjectID filter. A value that
// is not a valid ObjectID cannot exist in the store, so it maps to not-found.
func (c *collection[E, M]) idFilter(id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, c.notFound
	}

	return bson.M{"_id": oid}, nil
}

// FindAll returns every document in the collection.
func (c *collection[E, M]) FindAll(ctx context.Context) ([]*E, error) {
	cursor, err := c.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query collection")
	}

	var models []*M
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode documents")
	}

	entities := make([]*E, 0, len(models))
	for _, m := range models {
		entities = append(entities, c.toEntity(m))
	}

	return entities, nil
}

// FindByID retrieves a single document by its identifier.
func (c *collection[E, M]) FindByID(ctx context.Context, id string) (*E, error) {
	filter, err := c.idFilter(id)
	if err != nil {
		return nil, err
	}

	m := new(M)
	if err := c.coll.FindOne(ctx, filter).Decode(m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, c.notFound
		}

		return nil, errors.Wrap(err, "failed to find document by id")
	}

	return c.toEntity(m), nil
}

// Exists reports document presence via a point lookup projected down to the
// identifier, not a count.
func (c *collection[E, M]) Exists(ctx context.Context, id string) (bool, error) {
	filter, err := c.idFilter(id)
	if err != nil {
		return false, nil
	}

	projection := options.FindOne().SetProjection(bson.M{"_id": 1})
	if err := c.coll.FindOne(ctx, filter, projection).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check document existence")
	}

	return true, nil
}

// Create inserts a new document and writes the store-assigned identifier back
// onto the entity.
func (c *collection[E, M]) Create(ctx context.Context, e *E) error {
	res, err := c.coll.InsertOne(ctx, c.toModel(e))
	if err != nil {
		if c.duplicate != nil && mongo.IsDuplicateKeyError(err) {
			return c.duplicate
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert document")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.setID(e, oid.Hex())
	}

	return nil
}

// Update replaces the document with the given identifier in a single
// conditional operation; a zero matched count reports not-found instead of
// silently matching nothing.
func (c *collection[E, M]) Update(ctx context.Context, id string, e *E) error {
	filter, err := c.idFilter(id)
	if err != nil {
		return err
	}

	res, err := c.coll.ReplaceOne(ctx, filter, c.toModel(e))
	if err != nil {
		if c.duplicate != nil && mongo.IsDuplicateKeyError(err) {
			return c.duplicate
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to replace document")
	}

	if res.MatchedCount == 0 {
		return c.notFound
	}

	return nil
}

// Remove deletes the document with the given identifier, reporting not-found
// through the deleted count of the single atomic delete.
func (c *collection[E, M]) Remove(ctx context.Context, id string) error {
	filter, err := c.idFilter(id)
	if err != nil {
		return err
	}

	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete document")
	}

	if res.DeletedCount == 0 {
		return c.notFound
	}

	return nil
}
