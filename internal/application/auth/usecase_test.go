package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/veterinaria-api/internal/application/auth"
	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/veterinaria-api/pkg/jwt"
)

const (
	testSecret = "secret-para-tests-de-auth"
	testIssuer = "veterinaria-api-test"
)

// memVetRepo repositorio en memoria con la misma semántica que el de postgres:
// email único, (nil, nil) cuando no hay fila.
type memVetRepo struct {
	seq  int64
	vets map[int64]*entity.Veterinaria
}

func newMemVetRepo() *memVetRepo {
	return &memVetRepo{vets: map[int64]*entity.Veterinaria{}}
}

func (r *memVetRepo) Create(ctx context.Context, vet *entity.Veterinaria) error {
	for _, v := range r.vets {
		if v.Email == vet.Email {
			return domain.ErrEmailYaRegistrado
		}
	}
	r.seq++
	vet.ID = r.seq
	copia := *vet
	r.vets[vet.ID] = &copia
	return nil
}

func (r *memVetRepo) GetByEmail(ctx context.Context, email string) (*entity.Veterinaria, error) {
	for _, v := range r.vets {
		if v.Email == email {
			copia := *v
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memVetRepo) GetByID(ctx context.Context, id int64) (*entity.Veterinaria, error) {
	v, ok := r.vets[id]
	if !ok {
		return nil, nil
	}
	copia := *v
	return &copia, nil
}

func (r *memVetRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.vets[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.vets, id)
	return nil
}

// memClienteRepo solo implementa lo que necesita EliminarCuenta.
type memClienteRepo struct {
	porVeterinaria map[int64]int
}

func (r *memClienteRepo) Create(ctx context.Context, cliente *entity.Cliente) error { return nil }
func (r *memClienteRepo) ListByVeterinaria(ctx context.Context, veterinariaID int64) ([]*entity.Cliente, error) {
	return nil, nil
}
func (r *memClienteRepo) GetByID(ctx context.Context, veterinariaID, clienteID int64) (*entity.Cliente, error) {
	return nil, domain.ErrNotFound
}
func (r *memClienteRepo) Update(ctx context.Context, cliente *entity.Cliente) error {
	return domain.ErrNotFound
}
func (r *memClienteRepo) Delete(ctx context.Context, veterinariaID, clienteID int64) error {
	return domain.ErrNotFound
}
func (r *memClienteRepo) DeleteByVeterinaria(ctx context.Context, veterinariaID int64) error {
	delete(r.porVeterinaria, veterinariaID)
	return nil
}

// memTxRunner ejecuta el callback directamente con los repos en memoria.
type memTxRunner struct {
	vetRepo     *memVetRepo
	clienteRepo *memClienteRepo
}

func (r *memTxRunner) Run(ctx context.Context, fn func(repository.VeterinariaRepository, repository.ClienteRepository) error) error {
	return fn(r.vetRepo, r.clienteRepo)
}

func nuevoUseCase() (*auth.AuthUseCase, *memVetRepo, *memClienteRepo) {
	vetRepo := newMemVetRepo()
	clienteRepo := &memClienteRepo{porVeterinaria: map[int64]int{}}
	uc := auth.NewAuthUseCase(vetRepo, &memTxRunner{vetRepo: vetRepo, clienteRepo: clienteRepo}, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 30,
		Issuer:     testIssuer,
	})
	return uc, vetRepo, clienteRepo
}

func registroValido() dto.RegistroRequest {
	return dto.RegistroRequest{
		Nombre:   "Veterinaria Test",
		Email:    "test@vet.com",
		Password: "test123",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

// El hash persistido verifica contra el password original y rechaza cualquier
// otro string; el plano nunca se guarda.
func TestRegistrar_HashVerificaSoloElPasswordOriginal(t *testing.T) {
	uc, vetRepo, _ := nuevoUseCase()

	out, err := uc.Registrar(context.Background(), registroValido())
	require.NoError(t, err)
	require.NotNil(t, out)

	guardada := vetRepo.vets[out.ID]
	require.NotNil(t, guardada)
	assert.NotEqual(t, "test123", guardada.HashedPassword, "el password plano nunca se persiste")

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardada.HashedPassword), []byte("test123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(guardada.HashedPassword), []byte("test124")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(guardada.HashedPassword), []byte("")))
}

// Dos registros del mismo password producen hashes distintos (salt fresco).
func TestRegistrar_SaltFrescoPorPassword(t *testing.T) {
	uc, vetRepo, _ := nuevoUseCase()

	a, err := uc.Registrar(context.Background(), registroValido())
	require.NoError(t, err)

	otra := registroValido()
	otra.Email = "otra@vet.com"
	b, err := uc.Registrar(context.Background(), otra)
	require.NoError(t, err)

	assert.NotEqual(t, vetRepo.vets[a.ID].HashedPassword, vetRepo.vets[b.ID].HashedPassword,
		"mismo password debe producir hashes distintos por el salt")
}

func TestRegistrar_EmailDuplicado(t *testing.T) {
	uc, vetRepo, _ := nuevoUseCase()

	_, err := uc.Registrar(context.Background(), registroValido())
	require.NoError(t, err)

	_, err = uc.Registrar(context.Background(), registroValido())
	assert.ErrorIs(t, err, domain.ErrEmailYaRegistrado)
	assert.Len(t, vetRepo.vets, 1, "debe quedar exactamente una veterinaria con ese email")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

// El token emitido resuelve al ID de la veterinaria que hizo login y a ninguna otra.
func TestLogin_TokenResuelveAlSubjectCorrecto(t *testing.T) {
	uc, _, _ := nuevoUseCase()

	vet, err := uc.Registrar(context.Background(), registroValido())
	require.NoError(t, err)

	otra := registroValido()
	otra.Email = "otra@vet.com"
	vetB, err := uc.Registrar(context.Background(), otra)
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "test@vet.com", Password: "test123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)

	id, err := pkgjwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, vet.ID, id)
	assert.NotEqual(t, vetB.ID, id)
}

// Email desconocido y password incorrecto devuelven el mismo error, para no
// permitir enumerar cuentas.
func TestLogin_FallosIndistinguibles(t *testing.T) {
	uc, _, _ := nuevoUseCase()

	_, err := uc.Registrar(context.Background(), registroValido())
	require.NoError(t, err)

	_, errEmail := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie@vet.com", Password: "test123"})
	_, errPass := uc.Login(context.Background(), dto.LoginRequest{Username: "test@vet.com", Password: "incorrecta"})

	assert.ErrorIs(t, errEmail, domain.ErrNoAutorizado)
	assert.ErrorIs(t, errPass, domain.ErrNoAutorizado)
	assert.Equal(t, errEmail, errPass)
}

// ──────────────────────────────────────────────────────────────────────────────
// Baja de cuenta
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminarCuenta_BorraVeterinariaYClientes(t *testing.T) {
	uc, vetRepo, clienteRepo := nuevoUseCase()

	vet, err := uc.Registrar(context.Background(), registroValido())
	require.NoError(t, err)
	clienteRepo.porVeterinaria[vet.ID] = 3

	require.NoError(t, uc.EliminarCuenta(context.Background(), vet.ID))

	assert.NotContains(t, vetRepo.vets, vet.ID)
	assert.NotContains(t, clienteRepo.porVeterinaria, vet.ID)
}
