package repository

import (
	"context"

	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente.
// Toda operación sobre un cliente concreto recibe el veterinariaID del
// caller autenticado y debe filtrarse por él: un ID de otra veterinaria se
// comporta igual que un ID inexistente (domain.ErrNotFound).
type ClienteRepository interface {
	Create(ctx context.Context, cliente *entity.Cliente) error
	ListByVeterinaria(ctx context.Context, veterinariaID int64) ([]*entity.Cliente, error)
	// GetByID retorna domain.ErrNotFound si el cliente no existe o no
	// pertenece a la veterinaria.
	GetByID(ctx context.Context, veterinariaID, clienteID int64) (*entity.Cliente, error)
	// Update reemplaza todos los campos mutables; VeterinariaID nunca cambia.
	Update(ctx context.Context, cliente *entity.Cliente) error
	Delete(ctx context.Context, veterinariaID, clienteID int64) error
	// DeleteByVeterinaria elimina todos los clientes de una veterinaria
	// (cascada al borrar la cuenta).
	DeleteByVeterinaria(ctx context.Context, veterinariaID int64) error
}
