package models

// Usuario is an account that can authenticate against the API.
// The password hash never leaves the server.
type Usuario struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"-"`
}
