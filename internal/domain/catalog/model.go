package catalog

import "time"

// Category agrupa razas (Perros, Gatos, Aves...). Datos de referencia, solo lectura.
type Category struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

// Breed es una raza del catálogo; CategoryName viene del join con categories.
type Breed struct {
	ID              int64
	Name            string
	ScientificName  string
	Description     string
	DefaultImageURL string
	CategoryID      int64
	CategoryName    string
}

// Curiosidad es contenido editorial; solo se listan las visibles.
type Curiosidad struct {
	ID        int64
	Title     string
	Content   string
	ImageURL  string
	Tags      []string
	Visible   bool
	CreatedAt time.Time
}

// BreedFilter: sin campos = todas. CategoryName compara sin mayúsculas.
type BreedFilter struct {
	CategoryID   int64
	CategoryName string
}
