package catalog

// Datos de referencia que se cargan cuando las tablas están vacías.

type SeedBreed struct {
	Breed
	Category string
}

var DefaultCategories = []Category{
	{Name: "Perros", Description: "Razas de perros domésticos"},
	{Name: "Gatos", Description: "Razas de gatos domésticos"},
	{Name: "Aves", Description: "Aves de compañía"},
}

var DefaultBreeds = []SeedBreed{
	{Category: "Perros", Breed: Breed{Name: "Labrador", ScientificName: "Canis lupus familiaris", Description: "Perro de trabajo y familia, muy sociable."}},
	{Category: "Perros", Breed: Breed{Name: "Pastor Alemán", ScientificName: "Canis lupus familiaris", Description: "Inteligente y versátil, usado como perro de servicio."}},
	{Category: "Perros", Breed: Breed{Name: "Bulldog", ScientificName: "Canis lupus familiaris", Description: "Tranquilo, de cuerpo robusto y hocico corto."}},
	{Category: "Perros", Breed: Breed{Name: "Beagle", ScientificName: "Canis lupus familiaris", Description: "Sabueso pequeño de gran olfato."}},
	{Category: "Gatos", Breed: Breed{Name: "Siamés", ScientificName: "Felis catus", Description: "Vocal y afectuoso, de ojos azules."}},
	{Category: "Gatos", Breed: Breed{Name: "Persa", ScientificName: "Felis catus", Description: "Pelo largo y carácter calmado."}},
	{Category: "Gatos", Breed: Breed{Name: "Maine Coon", ScientificName: "Felis catus", Description: "Uno de los gatos domésticos más grandes."}},
	{Category: "Gatos", Breed: Breed{Name: "Bengala", ScientificName: "Felis catus", Description: "Pelaje moteado y muy activo."}},
	{Category: "Aves", Breed: Breed{Name: "Canario", ScientificName: "Serinus canaria domestica", Description: "Ave cantora de pequeño tamaño."}},
	{Category: "Aves", Breed: Breed{Name: "Periquito", ScientificName: "Melopsittacus undulatus", Description: "Loro pequeño, sociable y fácil de cuidar."}},
	{Category: "Aves", Breed: Breed{Name: "Cacatúa", ScientificName: "Cacatuidae", Description: "Loro con cresta, muy longevo."}},
}

var DefaultCuriosidades = []Curiosidad{
	{
		Title:   "El olfato de los perros",
		Content: "Un perro tiene cerca de 300 millones de receptores olfativos; una persona, unos 6 millones.",
		Tags:    []string{"perros", "sentidos"},
		Visible: true,
	},
	{
		Title:   "Los gatos y el ronroneo",
		Content: "Los gatos ronronean tanto cuando están tranquilos como cuando sienten dolor o estrés.",
		Tags:    []string{"gatos", "comportamiento"},
		Visible: true,
	},
	{
		Title:   "Periquitos que hablan",
		Content: "Algunos periquitos aprenden cientos de palabras; suelen imitar mejor las voces que escuchan a diario.",
		Tags:    []string{"aves"},
		Visible: true,
	},
}
