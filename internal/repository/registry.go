package repository

import (
	"auction-house/internal/biddingerrors"
	model "auction-house/internal/models"
	"auction-house/utils"
	"fmt"
	"sync"
)

// UserRegistry holds registered users in registration order.
// Usernames are not unique.
type UserRegistry struct {
	mu    sync.RWMutex
	users []*model.User
	byID  map[string]*model.User // key: userID -> value: user
}

func NewUserRegistry() *UserRegistry {
	return &UserRegistry{
		users: []*model.User{},
		byID:  make(map[string]*model.User),
	}
}

// RegisterUser always creates a new user, even if the username is taken
func (r *UserRegistry) RegisterUser(username string) *model.User {
	user := &model.User{
		UserID:   utils.GenerateID(),
		Username: username,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, user)
	r.byID[user.UserID] = user
	return user
}

// FindUser returns the first registered user with the given username
func (r *UserRegistry) FindUser(username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, fmt.Errorf("find user %q: %w", username, biddingerrors.ErrUserNotFound)
}

// GetUser returns the user with the given ID
func (r *UserRegistry) GetUser(userID string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[userID]
	if !ok {
		return nil, fmt.Errorf("get user %s: %w", userID, biddingerrors.ErrUserNotFound)
	}
	return u, nil
}

// Users returns all registered users in registration order
func (r *UserRegistry) Users() []*model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*model.User(nil), r.users...)
}
