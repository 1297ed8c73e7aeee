package repository

import (
	"context"

	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
)

// VeterinariaRepository define el puerto de persistencia para Veterinaria.
type VeterinariaRepository interface {
	// Create persiste una nueva veterinaria y asigna su ID.
	// Retorna domain.ErrEmailYaRegistrado si el email ya existe.
	Create(ctx context.Context, vet *entity.Veterinaria) error
	// GetByEmail retorna (nil, nil) si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.Veterinaria, error)
	// GetByID retorna (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Veterinaria, error)
	// Delete elimina la veterinaria. Los clientes asociados se eliminan en la
	// misma transacción (ver TxRunner) además del ON DELETE CASCADE del schema.
	Delete(ctx context.Context, id int64) error
}
