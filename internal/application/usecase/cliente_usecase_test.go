package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/application/usecase"
	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
)

const (
	vetA = int64(1)
	vetB = int64(2)
)

// memClienteRepo réplica en memoria de la semántica del adaptador postgres:
// el filtro por veterinaria_id va en cada operación y cero coincidencias es
// ErrNotFound, exista o no el ID bajo otra veterinaria.
type memClienteRepo struct {
	seq      int64
	clientes map[int64]*entity.Cliente
}

func newMemClienteRepo() *memClienteRepo {
	return &memClienteRepo{clientes: map[int64]*entity.Cliente{}}
}

func (r *memClienteRepo) Create(ctx context.Context, cliente *entity.Cliente) error {
	r.seq++
	cliente.ID = r.seq
	copia := *cliente
	r.clientes[cliente.ID] = &copia
	return nil
}

func (r *memClienteRepo) ListByVeterinaria(ctx context.Context, veterinariaID int64) ([]*entity.Cliente, error) {
	var list []*entity.Cliente
	for id := int64(1); id <= r.seq; id++ { // orden de inserción
		c, ok := r.clientes[id]
		if ok && c.VeterinariaID == veterinariaID {
			copia := *c
			list = append(list, &copia)
		}
	}
	return list, nil
}

func (r *memClienteRepo) GetByID(ctx context.Context, veterinariaID, clienteID int64) (*entity.Cliente, error) {
	c, ok := r.clientes[clienteID]
	if !ok || c.VeterinariaID != veterinariaID {
		return nil, domain.ErrNotFound
	}
	copia := *c
	return &copia, nil
}

func (r *memClienteRepo) Update(ctx context.Context, cliente *entity.Cliente) error {
	existing, ok := r.clientes[cliente.ID]
	if !ok || existing.VeterinariaID != cliente.VeterinariaID {
		return domain.ErrNotFound
	}
	copia := *cliente
	copia.CreatedAt = existing.CreatedAt
	copia.VeterinariaID = existing.VeterinariaID // el dueño nunca cambia
	r.clientes[cliente.ID] = &copia
	return nil
}

func (r *memClienteRepo) Delete(ctx context.Context, veterinariaID, clienteID int64) error {
	c, ok := r.clientes[clienteID]
	if !ok || c.VeterinariaID != veterinariaID {
		return domain.ErrNotFound
	}
	delete(r.clientes, clienteID)
	return nil
}

func (r *memClienteRepo) DeleteByVeterinaria(ctx context.Context, veterinariaID int64) error {
	for id, c := range r.clientes {
		if c.VeterinariaID == veterinariaID {
			delete(r.clientes, id)
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }

func clienteValido() dto.ClienteRequest {
	return dto.ClienteRequest{
		NombreDueno:   "Juan Pérez",
		NombreMascota: "Firulais",
		Especie:       "Perro",
		Edad:          ptr(3.5),
		Peso:          ptr(25.5),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación y listado
// ──────────────────────────────────────────────────────────────────────────────

// El dueño del registro es siempre la veterinaria autenticada.
func TestCreate_EstampaDuenoDesdeElToken(t *testing.T) {
	uc := usecase.NewClienteUseCase(newMemClienteRepo())

	out, err := uc.Create(context.Background(), vetA, clienteValido())
	require.NoError(t, err)

	assert.Equal(t, vetA, out.VeterinariaID)
	assert.Equal(t, "Juan Pérez", out.NombreDueno)
	assert.Equal(t, "Firulais", out.NombreMascota)
	assert.Equal(t, "Perro", out.Especie)
	require.NotNil(t, out.Edad)
	assert.InDelta(t, 3.5, *out.Edad, 0.0001)
	require.NotNil(t, out.Peso)
	assert.InDelta(t, 25.5, *out.Peso, 0.0001)
}

func TestCreate_CamposRequeridos(t *testing.T) {
	uc := usecase.NewClienteUseCase(newMemClienteRepo())

	casos := []dto.ClienteRequest{
		{NombreMascota: "Firulais", Especie: "Perro"},         // falta dueño
		{NombreDueno: "Juan", Especie: "Perro"},               // falta mascota
		{NombreDueno: "Juan", NombreMascota: "Firulais"},      // falta especie
	}
	for _, in := range casos {
		_, err := uc.Create(context.Background(), vetA, in)
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	}

	negativa := clienteValido()
	negativa.Peso = ptr(-1.0)
	_, err := uc.Create(context.Background(), vetA, negativa)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// List devuelve solo los clientes de la veterinaria, en orden de inserción.
func TestList_FiltraPorVeterinaria(t *testing.T) {
	uc := usecase.NewClienteUseCase(newMemClienteRepo())

	a1, err := uc.Create(context.Background(), vetA, clienteValido())
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), vetB, clienteValido())
	require.NoError(t, err)
	a2, err := uc.Create(context.Background(), vetA, clienteValido())
	require.NoError(t, err)

	list, err := uc.List(context.Background(), vetA)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a1.ID, list[0].ID)
	assert.Equal(t, a2.ID, list[1].ID)
	for _, c := range list {
		assert.Equal(t, vetA, c.VeterinariaID)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento entre veterinarias
// ──────────────────────────────────────────────────────────────────────────────

// Para cualquier cliente de B, el get/update/delete de A falla con el mismo
// ErrNotFound que un ID inexistente.
func TestAislamiento_OperacionesCruzadasSonNotFound(t *testing.T) {
	uc := usecase.NewClienteUseCase(newMemClienteRepo())

	deB, err := uc.Create(context.Background(), vetB, clienteValido())
	require.NoError(t, err)

	_, errGet := uc.Get(context.Background(), vetA, deB.ID)
	_, errUpd := uc.Update(context.Background(), vetA, deB.ID, clienteValido())
	errDel := uc.Delete(context.Background(), vetA, deB.ID)
	_, errInexistente := uc.Get(context.Background(), vetA, 9999)

	assert.ErrorIs(t, errGet, domain.ErrNotFound)
	assert.ErrorIs(t, errUpd, domain.ErrNotFound)
	assert.ErrorIs(t, errDel, domain.ErrNotFound)
	assert.ErrorIs(t, errInexistente, domain.ErrNotFound)
	// ID ajeno e ID inexistente deben ser indistinguibles.
	assert.Equal(t, errInexistente, errGet)

	// El registro de B sigue intacto.
	intacto, err := uc.Get(context.Background(), vetB, deB.ID)
	require.NoError(t, err)
	assert.Equal(t, vetB, intacto.VeterinariaID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update y Delete propios
// ──────────────────────────────────────────────────────────────────────────────

// Update reemplaza todos los campos mutables pero nunca el dueño.
func TestUpdate_ReemplazaCamposSinCambiarDueno(t *testing.T) {
	uc := usecase.NewClienteUseCase(newMemClienteRepo())

	creado, err := uc.Create(context.Background(), vetA, clienteValido())
	require.NoError(t, err)

	cambio := dto.ClienteRequest{
		NombreDueno:   "María López",
		NombreMascota: "Michi",
		Especie:       "Gato",
		Raza:          ptr("Siamés"),
		Peso:          ptr(4.2),
	}
	out, err := uc.Update(context.Background(), vetA, creado.ID, cambio)
	require.NoError(t, err)

	assert.Equal(t, creado.ID, out.ID)
	assert.Equal(t, vetA, out.VeterinariaID)
	assert.Equal(t, "María López", out.NombreDueno)
	assert.Equal(t, "Michi", out.NombreMascota)
	assert.Equal(t, "Gato", out.Especie)
	assert.Nil(t, out.Edad, "un campo opcional omitido en el PUT queda en null")

	releido, err := uc.Get(context.Background(), vetA, creado.ID)
	require.NoError(t, err)
	assert.Equal(t, vetA, releido.VeterinariaID)
	assert.Equal(t, "Michi", releido.NombreMascota)
}

func TestDelete_EliminaSoloElPropio(t *testing.T) {
	uc := usecase.NewClienteUseCase(newMemClienteRepo())

	creado, err := uc.Create(context.Background(), vetA, clienteValido())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), vetA, creado.ID))

	_, err = uc.Get(context.Background(), vetA, creado.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Borrar dos veces también es NotFound.
	assert.ErrorIs(t, uc.Delete(context.Background(), vetA, creado.ID), domain.ErrNotFound)
}
