// Package model contains the persistence representations of the domain
// entities, annotated with BSON tags matching the stored document layout.
package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// BookModel is the MongoDB document shape for a book in the "books" collection.
type BookModel struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"Name"`
	Price    float64            `bson:"Price"`
	Category string             `bson:"Category"`
	Author   string             `bson:"Author"`
}
