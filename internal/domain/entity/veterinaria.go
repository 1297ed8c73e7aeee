package entity

import "time"

// Veterinaria representa una clínica registrada (tenant). Todos los clientes
// que crea quedan ligados a su ID.
type Veterinaria struct {
	ID             int64
	Nombre         string
	Telefono       *string
	Direccion      *string
	Email          string // único, sensible a mayúsculas tal como se guarda
	HashedPassword string // hash bcrypt, nunca el password plano
	CreatedAt      time.Time
}
