package mongodb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/repository"
	"bookstore/internal/infra/persistence/model"
)

// bookRepository implements the domain.BookRepository interface on top of the
// generic collection.
type bookRepository struct {
	*collection[entity.Book, model.BookModel]
}

// NewBookRepository is the constructor for bookRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewBookRepository(db *mongo.Database) repository.BookRepository {
	return &bookRepository{
		collection: newCollection(
			db.Collection(booksCollection),
			fromBookDomain,
			toBookDomain,
			func(e *entity.Book, id string) { e.ID = id },
			repository.ErrBookNotFound,
			nil, // books carry no unique index
		),
	}
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return &entity.Book{
		ID:       data.ID.Hex(),
		Name:     data.Name,
		Price:    data.Price,
		Category: data.Category,
		Author:   data.Author,
	}
}

func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	m := &model.BookModel{
		Name:     data.Name,
		Price:    data.Price,
		Category: data.Category,
		Author:   data.Author,
	}

	// Preserve the identifier on replace; a zero ObjectID is omitted on
	// insert so the store assigns one.
	if oid, err := primitive.ObjectIDFromHex(data.ID); err == nil {
		m.ID = oid
	}

	return m
}
