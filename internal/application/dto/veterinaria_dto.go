package dto

// RegistroRequest entrada para registrar una veterinaria (password en texto,
// se hashea en el use case).
type RegistroRequest struct {
	Nombre    string  `json:"nombre" validate:"required,min=1,max=200"`
	Telefono  *string `json:"telefono" validate:"omitempty,max=50"`
	Direccion *string `json:"direccion" validate:"omitempty,max=300"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6"`
}

// VeterinariaResponse salida de una veterinaria (nunca incluye el hash).
type VeterinariaResponse struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
	Email     string  `json:"email"`
}

// LoginRequest entrada para login. Viene form-encoded (estilo OAuth2 password
// flow): username es el email de la veterinaria.
type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// TokenResponse salida del login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // siempre "bearer"
}
