package dto

// RegisterRequest entrada para registrar un usuario. Role es opcional y por
// defecto USER; solo se aceptan ADMIN o USER.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// AuthenticationRequest entrada para iniciar sesión.
type AuthenticationRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthenticationResponse respuesta de registro y login: el bearer token.
type AuthenticationResponse struct {
	Token string `json:"token"`
}
