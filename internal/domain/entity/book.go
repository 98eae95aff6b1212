// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Book represents a single title in the store catalog.
type Book struct {
	ID       string  // Store-assigned opaque identifier (hex ObjectID).
	Name     string  // The book's display name.
	Price    float64 // Sale price, always positive.
	Category string  // Catalog category, e.g. "SciFi".
	Author   string  // The book's author.
}
