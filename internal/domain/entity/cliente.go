package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente representa un dueño de mascota con su mascota, siempre ligado a
// exactamente una Veterinaria. VeterinariaID es inmutable después de crear.
type Cliente struct {
	ID             int64
	NombreDueno    string
	TelefonoDueno  *string
	EmailDueno     *string
	DireccionDueno *string

	NombreMascota string
	Especie       string
	Raza          *string
	Edad          decimal.NullDecimal // años, NUMERIC en DB
	Peso          decimal.NullDecimal // kg, NUMERIC en DB
	Notas         *string

	VeterinariaID int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
