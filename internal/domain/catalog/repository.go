package catalog

import "context"

type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListBreeds(ctx context.Context, f BreedFilter) ([]Breed, error)
	// ListCuriosidades devuelve solo visibles, más nuevas primero.
	ListCuriosidades(ctx context.Context) ([]Curiosidad, error)
}
