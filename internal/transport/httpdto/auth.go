package httpdto

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserDTO struct {
	Email string `json:"email"`
}

// AuthResponse echoes the account email only; the password never leaves
// the server.
type AuthResponse struct {
	User UserDTO `json:"user"`
}
