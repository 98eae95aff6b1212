package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel is the MongoDB document shape for a user in the "users"
// collection. The Email field carries a unique ascending index.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"Email"`
	Username  string             `bson:"Username"`
	Password  string             `bson:"Password"` // bcrypt hash, never plaintext
	Role      string             `bson:"Role"`
	CreatedAt time.Time          `bson:"CreatedAt"`
}
