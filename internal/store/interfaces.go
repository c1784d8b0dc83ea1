package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

// UserRepository is the credential store: persistent user records keyed by
// id and by email.
//
// Implementations wrap transient driver failures with [ErrStoreUnavailable].
type UserRepository interface {
	// FindAll returns one page of users matching query.Search, ordered by
	// query.SortBy / query.SortOrder.
	FindAll(ctx context.Context, query models.ListQuery) ([]models.User, error)

	// Count returns the number of users matching search. An empty search
	// matches everyone.
	Count(ctx context.Context, search string) (int, error)

	// FindByID returns [ErrUserNotFound] when no user has the given id.
	FindByID(ctx context.Context, id string) (models.User, error)

	// FindByEmail returns [ErrUserNotFound] when no user has the given email.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// Insert stores a new user and returns it with the generated id and
	// timestamps. A duplicate email returns [ErrEmailAlreadyExists].
	Insert(ctx context.Context, name, email, passwordHash string) (models.User, error)

	// Update replaces name and email of the user with id.
	Update(ctx context.Context, id, name, email string) error

	// UpdatePassword replaces the stored password hash of the user with id.
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	// Delete removes the user with id.
	Delete(ctx context.Context, id string) error
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
