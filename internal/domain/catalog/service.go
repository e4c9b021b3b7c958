package catalog

import (
	"context"
	"strconv"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

// Breeds filtra por categoría: un número se toma como id, cualquier otra cosa como nombre.
func (s *Service) Breeds(ctx context.Context, category string) ([]Breed, error) {
	return s.repo.ListBreeds(ctx, parseFilter(category))
}

// BreedsByCategory arma {"perros": [razas]} con la categoría en minúsculas,
// que es la forma que consume el catálogo del frontend.
func (s *Service) BreedsByCategory(ctx context.Context) (map[string][]string, error) {
	items, err := s.repo.ListBreeds(ctx, BreedFilter{})
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string)
	for _, b := range items {
		key := strings.ToLower(b.CategoryName)
		out[key] = append(out[key], b.Name)
	}
	return out, nil
}

func (s *Service) Curiosidades(ctx context.Context) ([]Curiosidad, error) {
	return s.repo.ListCuriosidades(ctx)
}

func parseFilter(category string) BreedFilter {
	category = strings.TrimSpace(category)
	if category == "" {
		return BreedFilter{}
	}
	if id, err := strconv.ParseInt(category, 10, 64); err == nil {
		// Un id no positivo no matchea nada.
		if id <= 0 {
			id = -1
		}
		return BreedFilter{CategoryID: id}
	}
	return BreedFilter{CategoryName: category}
}
