package auth

import (
	"context"
	"time"

	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
	"github.com/jhoicas/veterinaria-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y baja de cuenta.
type AuthUseCase struct {
	vetRepo repository.VeterinariaRepository
	tx      TxRunner
	jwtCfg  JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(vetRepo repository.VeterinariaRepository, tx TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{vetRepo: vetRepo, tx: tx, jwtCfg: jwtCfg}
}

// Registrar crea una veterinaria: hashea el password con bcrypt (salt fresco
// en cada llamada, embebido en el hash junto al cost) y persiste. Devuelve
// ErrEmailYaRegistrado si el email ya existe.
func (uc *AuthUseCase) Registrar(ctx context.Context, in dto.RegistroRequest) (*dto.VeterinariaResponse, error) {
	existing, err := uc.vetRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailYaRegistrado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	vet := &entity.Veterinaria{
		Nombre:         in.Nombre,
		Telefono:       in.Telefono,
		Direccion:      in.Direccion,
		Email:          in.Email,
		HashedPassword: string(hash),
		CreatedAt:      time.Now(),
	}
	// El repo traduce la violación del índice único a ErrEmailYaRegistrado,
	// cubriendo la carrera entre el GetByEmail de arriba y este insert.
	if err := uc.vetRepo.Create(ctx, vet); err != nil {
		return nil, err
	}
	return ToVeterinariaResponse(vet), nil
}

// Login verifica email/password y genera el JWT. Email desconocido y password
// incorrecto devuelven el mismo ErrNoAutorizado para no permitir enumerar
// cuentas; la comparación del hash es siempre bcrypt.CompareHashAndPassword.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	vet, err := uc.vetRepo.GetByEmail(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if vet == nil {
		return nil, domain.ErrNoAutorizado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(vet.HashedPassword), []byte(in.Password)); err != nil {
		return nil, domain.ErrNoAutorizado
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, vet.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// EliminarCuenta borra la veterinaria y todos sus clientes en una sola
// transacción.
func (uc *AuthUseCase) EliminarCuenta(ctx context.Context, veterinariaID int64) error {
	return uc.tx.Run(ctx, func(vetRepo repository.VeterinariaRepository, clienteRepo repository.ClienteRepository) error {
		if err := clienteRepo.DeleteByVeterinaria(ctx, veterinariaID); err != nil {
			return err
		}
		return vetRepo.Delete(ctx, veterinariaID)
	})
}

// ToVeterinariaResponse proyecta la entidad a su DTO público (sin hash).
func ToVeterinariaResponse(v *entity.Veterinaria) *dto.VeterinariaResponse {
	if v == nil {
		return nil
	}
	return &dto.VeterinariaResponse{
		ID:        v.ID,
		Nombre:    v.Nombre,
		Telefono:  v.Telefono,
		Direccion: v.Direccion,
		Email:     v.Email,
	}
}
