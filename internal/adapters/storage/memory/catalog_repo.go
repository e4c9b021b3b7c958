package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"pet-identifier/internal/domain/catalog"
)

// CatalogRepo sirve el seed por defecto. Es de solo lectura.
type CatalogRepo struct {
	categories   []catalog.Category
	breeds       []catalog.Breed
	curiosidades []catalog.Curiosidad
}

func NewCatalogRepo() *CatalogRepo {
	now := time.Now().UTC()
	r := &CatalogRepo{}

	ids := make(map[string]int64, len(catalog.DefaultCategories))
	for i, c := range catalog.DefaultCategories {
		c.ID = int64(i + 1)
		c.CreatedAt = now
		ids[c.Name] = c.ID
		r.categories = append(r.categories, c)
	}
	for i, sb := range catalog.DefaultBreeds {
		b := sb.Breed
		b.ID = int64(i + 1)
		b.CategoryID = ids[sb.Category]
		b.CategoryName = sb.Category
		r.breeds = append(r.breeds, b)
	}
	for i, c := range catalog.DefaultCuriosidades {
		c.ID = int64(i + 1)
		// Mismo orden relativo que tendría created_at en el seed SQL.
		c.CreatedAt = now.Add(time.Duration(i) * time.Second)
		r.curiosidades = append(r.curiosidades, c)
	}
	return r
}

func (r *CatalogRepo) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	out := make([]catalog.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *CatalogRepo) ListBreeds(ctx context.Context, f catalog.BreedFilter) ([]catalog.Breed, error) {
	out := make([]catalog.Breed, 0, len(r.breeds))
	for _, b := range r.breeds {
		if f.CategoryID != 0 && b.CategoryID != f.CategoryID {
			continue
		}
		if f.CategoryName != "" && !strings.EqualFold(b.CategoryName, f.CategoryName) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *CatalogRepo) ListCuriosidades(ctx context.Context) ([]catalog.Curiosidad, error) {
	out := make([]catalog.Curiosidad, 0, len(r.curiosidades))
	for _, c := range r.curiosidades {
		if c.Visible {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
