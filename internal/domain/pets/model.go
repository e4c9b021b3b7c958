package pets

import "time"

// Pet es una mascota guardada en la lista personal de un usuario.
// Breed es texto libre, normalmente la etiqueta devuelta por analyze-photo.
type Pet struct {
	ID          int64
	Name        string
	Breed       string
	Description string
	UserID      int64
	CreatedAt   time.Time
}
