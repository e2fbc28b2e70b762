// Package models contains data structures for the application's domain models.
package models

// Gender values accepted on registration.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// User represents the signed-in user's profile as reported by the backend.
// The client treats it as read-only after fetch; profile mutation happens
// server-side only.
type User struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	WeightKg float64 `json:"weightKg"`
	HeightM  float64 `json:"heightM"`
	Gender   string  `json:"gender"`
}

// Credentials is the ephemeral name/password pair used for login.
// It is never persisted.
type Credentials struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// RegisterInput carries the fields accepted by registration.
type RegisterInput struct {
	Name     string  `json:"name"`
	Password string  `json:"password"`
	Age      int     `json:"age,omitempty"`
	WeightKg float64 `json:"weightKg,omitempty"`
	HeightM  float64 `json:"heightM,omitempty"`
	Gender   string  `json:"gender,omitempty"`
}

// AuthResponse is returned by login and register. The token is opaque to the
// client: a non-empty token means "authenticated" for client purposes, and
// any structural or expiry validation is the server's responsibility.
type AuthResponse struct {
	Token string `json:"token"`
}
