// Package usecase defines the application use cases and their input DTOs.
package usecase

import (
	"context"

	"finboard/internal/domain/entity"
)

// CreateUserInput represents the payload for creating a user.
type CreateUserInput struct {
	Username     string                  `json:"username" validate:"required"`
	Password     string                  `json:"password" validate:"required"`
	FullName     string                  `json:"fullName"`
	Email        string                  `json:"email" validate:"omitempty,email"`
	ProfileImage string                  `json:"profileImage"`
	Preferences  *entity.UserPreferences `json:"preferences"`
}

// UpdateUserInput represents a partial user update. Nil fields are left
// untouched; the field set doubles as the mutable-field allow-list.
type UpdateUserInput struct {
	Username     *string                 `json:"username" validate:"omitempty,min=1"`
	Password     *string                 `json:"password" validate:"omitempty,min=1"`
	FullName     *string                 `json:"fullName"`
	Email        *string                 `json:"email" validate:"omitempty,email"`
	ProfileImage *string                 `json:"profileImage"`
	Preferences  *entity.UserPreferences `json:"preferences"`
}

// UserUsecase defines the user management use cases.
type UserUsecase interface {
	// CreateUser registers a new user. The returned entity still carries
	// the password; the boundary decides whether to expose it.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id int64) (*entity.User, error)

	// UpdateUser applies a partial update to a user.
	UpdateUser(ctx context.Context, id int64, input *UpdateUserInput) (*entity.User, error)
}
