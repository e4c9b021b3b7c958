package memory

import (
	"context"
	"testing"

	"pet-identifier/internal/domain/catalog"
	"pet-identifier/internal/domain/pets"
	"pet-identifier/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_UniqueAndLookup(t *testing.T) {
	r := NewUserRepo()
	ctx := context.Background()

	u, err := r.Create(ctx, users.User{Email: "a@b.co", Name: "ana"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	_, err = r.Create(ctx, users.User{Email: "A@B.CO", Name: "otra"})
	assert.ErrorIs(t, err, users.ErrUserExists)
	_, err = r.Create(ctx, users.User{Email: "x@b.co", Name: "ana"})
	assert.ErrorIs(t, err, users.ErrUserExists)

	got, err := r.GetByName(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = r.GetByName(ctx, "nadie")
	assert.ErrorIs(t, err, users.ErrUserNotFound)

	list, _ := r.List(ctx)
	assert.Len(t, list, 1)
}

func TestPetRepo_ForeignKeyAndOwnership(t *testing.T) {
	ur := NewUserRepo()
	ctx := context.Background()
	owner, _ := ur.Create(ctx, users.User{Email: "a@b.co", Name: "ana"})

	r := NewPetRepo(ur)

	_, err := r.Create(ctx, pets.Pet{Name: "x", UserID: 42})
	assert.ErrorIs(t, err, pets.ErrUserNotFound)

	p1, err := r.Create(ctx, pets.Pet{Name: "a", UserID: owner.ID})
	require.NoError(t, err)
	p2, err := r.Create(ctx, pets.Pet{Name: "b", UserID: owner.ID})
	require.NoError(t, err)

	list, _ := r.ListByUser(ctx, owner.ID)
	require.Len(t, list, 2)
	assert.Equal(t, []int64{p1.ID, p2.ID}, []int64{list[0].ID, list[1].ID})

	assert.ErrorIs(t, r.Delete(ctx, p1.ID, owner.ID+1), pets.ErrPetNotFound)
	require.NoError(t, r.Delete(ctx, p1.ID, owner.ID))
	list, _ = r.ListByUser(ctx, owner.ID)
	assert.Len(t, list, 1)
}

func TestCatalogRepo_Filters(t *testing.T) {
	r := NewCatalogRepo()
	ctx := context.Background()

	cats, _ := r.ListCategories(ctx)
	require.Len(t, cats, len(catalog.DefaultCategories))

	all, _ := r.ListBreeds(ctx, catalog.BreedFilter{})
	assert.Len(t, all, len(catalog.DefaultBreeds))

	gatos, _ := r.ListBreeds(ctx, catalog.BreedFilter{CategoryName: "GATOS"})
	require.NotEmpty(t, gatos)
	for _, b := range gatos {
		assert.Equal(t, "Gatos", b.CategoryName)
	}

	byID, _ := r.ListBreeds(ctx, catalog.BreedFilter{CategoryID: cats[0].ID})
	assert.NotEmpty(t, byID)

	none, _ := r.ListBreeds(ctx, catalog.BreedFilter{CategoryID: 999})
	assert.Empty(t, none)

	cur, _ := r.ListCuriosidades(ctx)
	require.NotEmpty(t, cur)
	for i := 1; i < len(cur); i++ {
		assert.False(t, cur[i].CreatedAt.After(cur[i-1].CreatedAt))
	}
}
