// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"finboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when creating or renaming a user
	// would violate username uniqueness.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserPatch lists the user fields a partial update may touch. Nil fields are
// left untouched; anything outside this allow-list never reaches the store.
type UserPatch struct {
	Username     *string
	Password     *string
	FullName     *string
	Email        *string
	ProfileImage *string
	Preferences  *entity.UserPreferences
}

// UserRepository defines the interface for user-related store operations.
type UserRepository interface {
	// CreateUser assigns the next sequential ID, inserts the user, and
	// returns the stored value.
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)

	// FindUserByID retrieves a user by ID, or ErrUserNotFound.
	FindUserByID(ctx context.Context, id int64) (*entity.User, error)

	// FindUserByUsername retrieves a user by username, or ErrUserNotFound.
	FindUserByUsername(ctx context.Context, username string) (*entity.User, error)

	// UpdateUser applies the patch to an existing user and returns the
	// updated value, or ErrUserNotFound.
	UpdateUser(ctx context.Context, id int64, patch *UserPatch) (*entity.User, error)
}
