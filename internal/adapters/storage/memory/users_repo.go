package memory

import (
	"context"
	"strings"
	"sync"

	"pet-identifier/internal/domain/users"
)

type UserRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]users.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID: make(map[int64]users.User),
	}
}

func (r *UserRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, x := range r.byID {
		if strings.EqualFold(x.Email, u.Email) || x.Name == u.Name {
			return users.User{}, users.ErrUserExists
		}
	}
	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = u
	return u, nil
}

func (r *UserRepo) GetByName(ctx context.Context, name string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Name == name {
			return u, nil
		}
	}
	return users.User{}, users.ErrUserNotFound
}

func (r *UserRepo) List(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0, len(r.byID))
	for id := int64(1); id <= r.nextID; id++ {
		if u, ok := r.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// exists lo usa PetRepo para emular la FK pets.user_id -> users.id.
func (r *UserRepo) exists(id int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok
}
