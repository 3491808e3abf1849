package repository

import (
	"alcyxob/fitness-tracker/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound       = RepositoryError("not found")
	ErrDuplicateEmail = RepositoryError("user with this email already exists")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	// GetByIDs returns the users that exist among ids, in no particular order.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error)
}

// Query narrows and orders a Find call.
type Query struct {
	// OwnerField is the document field compared against Owner.
	OwnerField string
	// Owner, when set, restricts results to documents owned by it.
	Owner *primitive.ObjectID
	// SortField orders the results; empty keeps the store's natural order.
	SortField  string
	Descending bool
}

// DocumentRepository is the persistence contract shared by every resource
// kind. Create and Update validate the document and maintain its timestamps.
type DocumentRepository[T any] interface {
	Create(ctx context.Context, doc *T) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	Find(ctx context.Context, q Query) ([]T, error)
	Update(ctx context.Context, doc *T) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
