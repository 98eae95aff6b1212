package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/errors"
	"bookstore/internal/infra/persistence/model"
)

// userRepository implements the domain.UserRepository interface on top of the
// generic collection, adding the email lookup used by authentication.
type userRepository struct {
	*collection[entity.User, model.UserModel]
}

// NewUserRepository is the constructor for userRepository.
// Unique index violations on Email are converted to the domain's
// ErrUserAlreadyExists.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		collection: newCollection(
			db.Collection(usersCollection),
			fromUserDomain,
			toUserDomain,
			func(e *entity.User, id string) { e.ID = id },
			repository.ErrUserNotFound,
			domainerrors.ErrUserAlreadyExists,
		),
	}
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, bson.M{"Email": email}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID.Hex(),
		Email:        data.Email,
		Username:     data.Username,
		PasswordHash: data.Password,
		Role:         entity.RoleFromString(data.Role),
		CreatedAt:    data.CreatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	m := &model.UserModel{
		Email:     data.Email,
		Username:  data.Username,
		Password:  data.PasswordHash,
		Role:      data.Role.String(),
		CreatedAt: data.CreatedAt,
	}

	if oid, err := primitive.ObjectIDFromHex(data.ID); err == nil {
		m.ID = oid
	}

	return m
}
