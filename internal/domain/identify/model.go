package identify

const (
	PetStatusPet    = "pet"
	PetStatusNotPet = "not_pet"
)

// Result es el veredicto de analyze-photo. No se persiste.
type Result struct {
	Label      string
	Confidence *float64
	IsPet      bool
	PetStatus  string
	Species    Species
}

// UploadResult es la respuesta de identify (subida multipart).
type UploadResult struct {
	Breed      string
	Confidence *float64
}
