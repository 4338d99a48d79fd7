package repository

import (
	"strings"
	"sync"

	"rentacar/internal/domains/auth/model"
)

// Users is an in-memory account store. The backend owns every rental entity
// but knows nothing about users, so accounts are process-local and reset on
// restart, matching the original's simulated sessions.
type Users interface {
	GetByEmail(email string) (model.User, bool)
	Insert(user model.User) bool
}

type usersImpl struct {
	mu      sync.RWMutex
	byEmail map[string]model.User
}

func New(seed []model.User) Users {
	store := &usersImpl{
		byEmail: make(map[string]model.User, len(seed)),
	}

	for _, user := range seed {
		store.byEmail[normalize(user.Email)] = user
	}

	return store
}

func (r *usersImpl) GetByEmail(email string) (model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[normalize(email)]

	return user, ok
}

// Insert adds the user unless the email is already taken.
func (r *usersImpl) Insert(user model.User) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalize(user.Email)
	if _, exists := r.byEmail[key]; exists {
		return false
	}

	r.byEmail[key] = user

	return true
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
