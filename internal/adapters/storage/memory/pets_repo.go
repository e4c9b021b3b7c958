package memory

import (
	"context"
	"sort"
	"sync"

	"pet-identifier/internal/domain/pets"
)

type PetRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]pets.Pet
	users  *UserRepo
}

// NewPetRepo recibe el repo de usuarios para validar el dueño como lo haría la FK.
func NewPetRepo(users *UserRepo) *PetRepo {
	return &PetRepo{
		byID:  make(map[int64]pets.Pet),
		users: users,
	}
}

func (r *PetRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	if r.users != nil && !r.users.exists(p.UserID) {
		return pets.Pet{}, pets.ErrUserNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *PetRepo) Delete(ctx context.Context, id, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok || p.UserID != userID {
		return pets.ErrPetNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *PetRepo) ListByUser(ctx context.Context, userID int64) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if p.UserID == userID {
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
