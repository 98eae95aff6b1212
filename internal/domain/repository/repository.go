// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "context"

// Repository defines the standard document-store operations shared by all
// collections. It is parameterized over the entity type so that each entity
// gets a type-safe view of the same underlying implementation.
//
// Update and Remove are atomic conditional operations keyed by id: they
// report not-found through the entity's domain error instead of silently
// matching nothing, so callers do not need a separate existence check before
// mutating.
type Repository[E any] interface {
	// FindAll returns every document in the collection. No pagination and no
	// ordering guarantee beyond the store default.
	FindAll(ctx context.Context) ([]*E, error)

	// FindByID retrieves a single document by its store-assigned identifier.
	FindByID(ctx context.Context, id string) (*E, error)

	// Exists reports whether a document with the given identifier is present.
	// Implemented as a point lookup, not a count.
	Exists(ctx context.Context, id string) (bool, error)

	// Create inserts a new document. The store assigns the identifier and it
	// is written back onto the entity.
	Create(ctx context.Context, e *E) error

	// Update replaces the document with the given identifier.
	Update(ctx context.Context, id string, e *E) error

	// Remove deletes the document with the given identifier.
	Remove(ctx context.Context, id string) error
}
