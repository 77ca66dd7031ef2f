// Package impl implements the application use cases over the domain
// repositories and collaborator services.
package impl

import (
	"context"
	"fmt"

	"finboard/internal/domain/entity"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/domain/repository"
	"finboard/internal/usecase"

	"github.com/pkg/errors"
)

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository) usecase.UserUsecase {
	return &userService{userRepo: userRepo}
}

// CreateUser registers a new user with a unique username.
func (s *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	user := &entity.User{
		Username:     input.Username,
		Password:     input.Password,
		FullName:     input.FullName,
		Email:        input.Email,
		ProfileImage: input.ProfileImage,
		Preferences:  input.Preferences,
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, domainerrors.ErrUsernameTaken.WrapMessage("username already registered")
		}

		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// GetUser retrieves a user by ID.
func (s *userService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}

	return user, nil
}

// UpdateUser applies a partial update to a user. Only allow-listed fields
// ever reach the store.
func (s *userService) UpdateUser(ctx context.Context, id int64, input *usecase.UpdateUserInput) (*entity.User, error) {
	patch := &repository.UserPatch{
		Username:     input.Username,
		Password:     input.Password,
		FullName:     input.FullName,
		Email:        input.Email,
		ProfileImage: input.ProfileImage,
		Preferences:  input.Preferences,
	}

	updated, err := s.userRepo.UpdateUser(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrUserNotFound
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, domainerrors.ErrUsernameTaken
		}

		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}
