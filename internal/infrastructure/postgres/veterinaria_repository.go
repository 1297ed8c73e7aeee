package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
)

var _ repository.VeterinariaRepository = (*VeterinariaRepo)(nil)

// VeterinariaRepo implementación del puerto VeterinariaRepository sobre PostgreSQL.
type VeterinariaRepo struct {
	db querier
}

// NewVeterinariaRepository construye el adaptador de persistencia para veterinarias.
// Acepta el pool o una transacción (ver TxRunner).
func NewVeterinariaRepository(db querier) *VeterinariaRepo {
	return &VeterinariaRepo{db: db}
}

// Create persiste una nueva veterinaria y asigna el ID generado.
func (r *VeterinariaRepo) Create(ctx context.Context, vet *entity.Veterinaria) error {
	query := `
		INSERT INTO veterinarias (nombre, telefono, direccion, email, hashed_password, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		vet.Nombre, vet.Telefono, vet.Direccion, vet.Email, vet.HashedPassword, vet.CreatedAt,
	).Scan(&vet.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailYaRegistrado
		}
		return fmt.Errorf("insert veterinaria: %w", err)
	}
	return nil
}

// GetByEmail obtiene una veterinaria por email exacto. (nil, nil) si no existe.
func (r *VeterinariaRepo) GetByEmail(ctx context.Context, email string) (*entity.Veterinaria, error) {
	query := `
		SELECT id, nombre, telefono, direccion, email, hashed_password, created_at
		FROM veterinarias WHERE email = $1`
	var v entity.Veterinaria
	err := r.db.QueryRow(ctx, query, email).Scan(
		&v.ID, &v.Nombre, &v.Telefono, &v.Direccion, &v.Email, &v.HashedPassword, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get veterinaria by email: %w", err)
	}
	return &v, nil
}

// GetByID obtiene una veterinaria por ID. (nil, nil) si no existe.
func (r *VeterinariaRepo) GetByID(ctx context.Context, id int64) (*entity.Veterinaria, error) {
	query := `
		SELECT id, nombre, telefono, direccion, email, hashed_password, created_at
		FROM veterinarias WHERE id = $1`
	var v entity.Veterinaria
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Nombre, &v.Telefono, &v.Direccion, &v.Email, &v.HashedPassword, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get veterinaria by id: %w", err)
	}
	return &v, nil
}

// Delete elimina una veterinaria por ID.
func (r *VeterinariaRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM veterinarias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete veterinaria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
