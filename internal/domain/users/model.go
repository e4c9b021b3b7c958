package users

import "time"

// User es una cuenta registrada. PasswordHash nunca sale por la API.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Session es lo que devuelven login y register. Token solo si hay JWT_SECRET.
type Session struct {
	User  User
	Token string
}
