package memory

import (
	"context"
	"sync"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"
)

// UserRepository is the in-memory user collection.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[int64]*entity.User
	nextID int64
}

// NewUserRepository creates an empty user collection.
func NewUserRepository() repository.UserRepository {
	return &UserRepository{
		users:  make(map[int64]*entity.User),
		nextID: 1,
	}
}

// CreateUser assigns the next sequential ID and inserts the user.
func (r *UserRepository) CreateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return nil, repository.ErrDuplicateUsername
		}
	}

	stored := cloneUser(user)
	stored.ID = r.nextID
	r.nextID++
	r.users[stored.ID] = stored

	return cloneUser(stored), nil
}

// FindUserByID retrieves a user by ID.
func (r *UserRepository) FindUserByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

// FindUserByUsername retrieves a user by its unique username.
func (r *UserRepository) FindUserByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			return cloneUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// UpdateUser merges the allow-listed patch fields into an existing user.
func (r *UserRepository) UpdateUser(_ context.Context, id int64, patch *repository.UserPatch) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	if patch.Username != nil && *patch.Username != user.Username {
		for _, existing := range r.users {
			if existing.ID != id && existing.Username == *patch.Username {
				return nil, repository.ErrDuplicateUsername
			}
		}
		user.Username = *patch.Username
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.ProfileImage != nil {
		user.ProfileImage = *patch.ProfileImage
	}
	if patch.Preferences != nil {
		prefs := *patch.Preferences
		user.Preferences = &prefs
	}

	return cloneUser(user), nil
}

func cloneUser(user *entity.User) *entity.User {
	clone := *user
	if user.Preferences != nil {
		prefs := *user.Preferences
		clone.Preferences = &prefs
	}

	return &clone
}
