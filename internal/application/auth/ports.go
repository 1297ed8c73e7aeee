package auth

import (
	"context"

	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// Lo implementa la capa de infraestructura (postgres.TxRunner).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		vetRepo repository.VeterinariaRepository,
		clienteRepo repository.ClienteRepository,
	) error) error
}
