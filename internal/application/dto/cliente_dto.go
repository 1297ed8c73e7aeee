package dto

// ClienteRequest entrada para crear o reemplazar un cliente (dueño + mascota).
// No existe campo de veterinaria: el dueño del registro se estampa siempre
// desde el token autenticado, nunca desde el body.
type ClienteRequest struct {
	NombreDueno    string  `json:"nombre_dueno" validate:"required,min=1,max=200"`
	TelefonoDueno  *string `json:"telefono_dueno" validate:"omitempty,max=50"`
	EmailDueno     *string `json:"email_dueno" validate:"omitempty,email"`
	DireccionDueno *string `json:"direccion_dueno" validate:"omitempty,max=300"`

	NombreMascota string   `json:"nombre_mascota" validate:"required,min=1,max=200"`
	Especie       string   `json:"especie" validate:"required,min=1,max=100"`
	Raza          *string  `json:"raza" validate:"omitempty,max=100"`
	Edad          *float64 `json:"edad" validate:"omitempty,gte=0"`
	Peso          *float64 `json:"peso" validate:"omitempty,gte=0"`
	Notas         *string  `json:"notas" validate:"omitempty,max=2000"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID             int64   `json:"id"`
	NombreDueno    string  `json:"nombre_dueno"`
	TelefonoDueno  *string `json:"telefono_dueno"`
	EmailDueno     *string `json:"email_dueno"`
	DireccionDueno *string `json:"direccion_dueno"`

	NombreMascota string   `json:"nombre_mascota"`
	Especie       string   `json:"especie"`
	Raza          *string  `json:"raza"`
	Edad          *float64 `json:"edad"`
	Peso          *float64 `json:"peso"`
	Notas         *string  `json:"notas"`

	VeterinariaID int64 `json:"veterinaria_id"`
}
