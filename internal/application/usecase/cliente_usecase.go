package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ClienteUseCase casos de uso de clientes (dueño + mascota), siempre en el
// contexto de la veterinaria autenticada. Ninguna operación puede observar ni
// afectar un cliente de otra veterinaria, sin importar el ID recibido.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create crea un cliente estampando veterinariaID como dueño. El DTO no tiene
// campo de dueño, así que un body con veterinaria_id ajeno simplemente se ignora.
func (uc *ClienteUseCase) Create(ctx context.Context, veterinariaID int64, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if err := validar(in); err != nil {
		return nil, err
	}
	now := time.Now()
	cliente := &entity.Cliente{
		NombreDueno:    in.NombreDueno,
		TelefonoDueno:  in.TelefonoDueno,
		EmailDueno:     in.EmailDueno,
		DireccionDueno: in.DireccionDueno,
		NombreMascota:  in.NombreMascota,
		Especie:        in.Especie,
		Raza:           in.Raza,
		Edad:           toNullDecimal(in.Edad),
		Peso:           toNullDecimal(in.Peso),
		Notas:          in.Notas,
		VeterinariaID:  veterinariaID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// List lista los clientes de la veterinaria, en orden de inserción.
func (uc *ClienteUseCase) List(ctx context.Context, veterinariaID int64) ([]*dto.ClienteResponse, error) {
	list, err := uc.repo.ListByVeterinaria(ctx, veterinariaID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// Get obtiene un cliente por ID. ErrNotFound si no existe o si pertenece a
// otra veterinaria (casos indistinguibles).
func (uc *ClienteUseCase) Get(ctx context.Context, veterinariaID, clienteID int64) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(ctx, veterinariaID, clienteID)
	if err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Update reemplaza todos los campos mutables de un cliente propio. El dueño
// (VeterinariaID) nunca cambia por esta vía.
func (uc *ClienteUseCase) Update(ctx context.Context, veterinariaID, clienteID int64, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if err := validar(in); err != nil {
		return nil, err
	}
	cliente := &entity.Cliente{
		ID:             clienteID,
		NombreDueno:    in.NombreDueno,
		TelefonoDueno:  in.TelefonoDueno,
		EmailDueno:     in.EmailDueno,
		DireccionDueno: in.DireccionDueno,
		NombreMascota:  in.NombreMascota,
		Especie:        in.Especie,
		Raza:           in.Raza,
		Edad:           toNullDecimal(in.Edad),
		Peso:           toNullDecimal(in.Peso),
		Notas:          in.Notas,
		VeterinariaID:  veterinariaID,
		UpdatedAt:      time.Now(),
	}
	if err := uc.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Delete elimina un cliente propio. Mismo chequeo de pertenencia que Get.
func (uc *ClienteUseCase) Delete(ctx context.Context, veterinariaID, clienteID int64) error {
	return uc.repo.Delete(ctx, veterinariaID, clienteID)
}

func validar(in dto.ClienteRequest) error {
	if in.NombreDueno == "" || in.NombreMascota == "" || in.Especie == "" {
		return domain.ErrEntradaInvalida
	}
	if in.Edad != nil && *in.Edad < 0 {
		return domain.ErrEntradaInvalida
	}
	if in.Peso != nil && *in.Peso < 0 {
		return domain.ErrEntradaInvalida
	}
	return nil
}

func toNullDecimal(f *float64) decimal.NullDecimal {
	if f == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(*f), Valid: true}
}

func toFloatPtr(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f, _ := d.Decimal.Float64()
	return &f
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:             c.ID,
		NombreDueno:    c.NombreDueno,
		TelefonoDueno:  c.TelefonoDueno,
		EmailDueno:     c.EmailDueno,
		DireccionDueno: c.DireccionDueno,
		NombreMascota:  c.NombreMascota,
		Especie:        c.Especie,
		Raza:           c.Raza,
		Edad:           toFloatPtr(c.Edad),
		Peso:           toFloatPtr(c.Peso),
		Notas:          c.Notas,
		VeterinariaID:  c.VeterinariaID,
	}
}
