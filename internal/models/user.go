package models

// User is the demo authentication user. Role is "admin", "dispatcher" or
// "driver". Login does not actually check credentials (demo auth), but the
// collection is seeded so the schema carries real data.
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}
