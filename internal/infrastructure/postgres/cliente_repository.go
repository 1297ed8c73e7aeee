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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL.
// El filtro por veterinaria_id va en el WHERE de cada statement: el chequeo de
// pertenencia y la mutación son una sola operación atómica, y un ID ajeno
// produce cero filas igual que un ID inexistente.
type ClienteRepo struct {
	db querier
}

// NewClienteRepository construye el adaptador de persistencia para clientes.
// Acepta el pool o una transacción (ver TxRunner).
func NewClienteRepository(db querier) *ClienteRepo {
	return &ClienteRepo{db: db}
}

const clienteColumns = `
	id, nombre_dueno, telefono_dueno, email_dueno, direccion_dueno,
	nombre_mascota, especie, raza, edad, peso, notas,
	veterinaria_id, created_at, updated_at`

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(
		&c.ID, &c.NombreDueno, &c.TelefonoDueno, &c.EmailDueno, &c.DireccionDueno,
		&c.NombreMascota, &c.Especie, &c.Raza, &c.Edad, &c.Peso, &c.Notas,
		&c.VeterinariaID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente y asigna el ID generado.
func (r *ClienteRepo) Create(ctx context.Context, cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (
			nombre_dueno, telefono_dueno, email_dueno, direccion_dueno,
			nombre_mascota, especie, raza, edad, peso, notas,
			veterinaria_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		cliente.NombreDueno, cliente.TelefonoDueno, cliente.EmailDueno, cliente.DireccionDueno,
		cliente.NombreMascota, cliente.Especie, cliente.Raza, cliente.Edad, cliente.Peso, cliente.Notas,
		cliente.VeterinariaID, cliente.CreatedAt, cliente.UpdatedAt,
	).Scan(&cliente.ID)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// ListByVeterinaria lista los clientes de la veterinaria en orden de inserción.
func (r *ClienteRepo) ListByVeterinaria(ctx context.Context, veterinariaID int64) ([]*entity.Cliente, error) {
	query := `SELECT` + clienteColumns + `
		FROM clientes WHERE veterinaria_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, veterinariaID)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID obtiene un cliente propio. ErrNotFound si no existe o es de otra veterinaria.
func (r *ClienteRepo) GetByID(ctx context.Context, veterinariaID, clienteID int64) (*entity.Cliente, error) {
	query := `SELECT` + clienteColumns + `
		FROM clientes WHERE id = $1 AND veterinaria_id = $2`
	c, err := scanCliente(r.db.QueryRow(ctx, query, clienteID, veterinariaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get cliente by id: %w", err)
	}
	return c, nil
}

// Update reemplaza todos los campos mutables. veterinaria_id va solo en el
// WHERE, nunca en el SET: el dueño del registro no se puede reasignar.
func (r *ClienteRepo) Update(ctx context.Context, cliente *entity.Cliente) error {
	query := `
		UPDATE clientes SET
			nombre_dueno = $3, telefono_dueno = $4, email_dueno = $5, direccion_dueno = $6,
			nombre_mascota = $7, especie = $8, raza = $9, edad = $10, peso = $11, notas = $12,
			updated_at = $13
		WHERE id = $1 AND veterinaria_id = $2`
	tag, err := r.db.Exec(ctx, query,
		cliente.ID, cliente.VeterinariaID,
		cliente.NombreDueno, cliente.TelefonoDueno, cliente.EmailDueno, cliente.DireccionDueno,
		cliente.NombreMascota, cliente.Especie, cliente.Raza, cliente.Edad, cliente.Peso, cliente.Notas,
		cliente.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente propio. Mismo criterio de pertenencia que GetByID.
func (r *ClienteRepo) Delete(ctx context.Context, veterinariaID, clienteID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clientes WHERE id = $1 AND veterinaria_id = $2`, clienteID, veterinariaID)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByVeterinaria elimina todos los clientes de la veterinaria.
func (r *ClienteRepo) DeleteByVeterinaria(ctx context.Context, veterinariaID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM clientes WHERE veterinaria_id = $1`, veterinariaID)
	if err != nil {
		return fmt.Errorf("delete clientes de veterinaria: %w", err)
	}
	return nil
}
