package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/segupro/polizas-api/internal/domain"
	"github.com/segupro/polizas-api/internal/domain/entity"
	"github.com/segupro/polizas-api/internal/domain/repository"
)

var _ repository.ParteRepository = (*ParteRepo)(nil)

// ParteRepo implementación de ParteRepository (usable con pool o tx).
// Contratantes y asegurados comparten forma; la tabla se fija en el constructor.
type ParteRepo struct {
	q     Querier
	tabla string
}

// NewContratanteRepository adaptador sobre la tabla contratantes.
func NewContratanteRepository(q Querier) *ParteRepo {
	return &ParteRepo{q: q, tabla: "contratantes"}
}

// NewAseguradoRepository adaptador sobre la tabla asegurados.
func NewAseguradoRepository(q Querier) *ParteRepo {
	return &ParteRepo{q: q, tabla: "asegurados"}
}

// Upsert resuelve por documento: crea o sobreescribe los datos de contacto.
// El ON CONFLICT sobre el unique index hace la operación a prueba de
// carreras: dos requests concurrentes con el mismo documento nuevo terminan
// en un único registro.
func (r *ParteRepo) Upsert(p *entity.Parte) (*entity.Parte, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, nombre, documento, telefono, email, direccion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (documento) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			telefono = EXCLUDED.telefono,
			email = EXCLUDED.email,
			direccion = EXCLUDED.direccion,
			updated_at = EXCLUDED.updated_at
		RETURNING id, nombre, documento, telefono, email, direccion, created_at, updated_at`, r.tabla)

	var out entity.Parte
	err := r.q.QueryRow(context.Background(), query,
		p.ID, p.Nombre, p.Documento, p.Telefono, p.Email, p.Direccion, p.CreatedAt, p.UpdatedAt,
	).Scan(&out.ID, &out.Nombre, &out.Documento, &out.Telefono, &out.Email, &out.Direccion, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert %s: %w", r.tabla, err)
	}
	return &out, nil
}

// Create inserta sin resolver conflictos (CRUD directo).
func (r *ParteRepo) Create(p *entity.Parte) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, nombre, documento, telefono, email, direccion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, r.tabla)
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Documento, p.Telefono, p.Email, p.Direccion, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", r.tabla, err)
	}
	return nil
}

// GetByID obtiene una parte por ID.
func (r *ParteRepo) GetByID(id string) (*entity.Parte, error) {
	query := fmt.Sprintf(`
		SELECT id, nombre, documento, telefono, email, direccion, created_at, updated_at
		FROM %s WHERE id = $1`, r.tabla)
	return r.scanOne(query, id)
}

// GetByDocumento obtiene una parte por su documento (clave natural).
func (r *ParteRepo) GetByDocumento(documento string) (*entity.Parte, error) {
	query := fmt.Sprintf(`
		SELECT id, nombre, documento, telefono, email, direccion, created_at, updated_at
		FROM %s WHERE documento = $1`, r.tabla)
	return r.scanOne(query, documento)
}

// List lista partes ordenadas por nombre, con paginación.
func (r *ParteRepo) List(limit, offset int) ([]*entity.Parte, error) {
	query := fmt.Sprintf(`
		SELECT id, nombre, documento, telefono, email, direccion, created_at, updated_at
		FROM %s ORDER BY nombre LIMIT $1 OFFSET $2`, r.tabla)
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.tabla, err)
	}
	defer rows.Close()
	var list []*entity.Parte
	for rows.Next() {
		var p entity.Parte
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Documento, &p.Telefono, &p.Email, &p.Direccion, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.tabla, err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza una parte.
func (r *ParteRepo) Update(p *entity.Parte) error {
	query := fmt.Sprintf(`
		UPDATE %s SET nombre = $2, documento = $3, telefono = $4, email = $5, direccion = $6, updated_at = $7
		WHERE id = $1`, r.tabla)
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Documento, p.Telefono, p.Email, p.Direccion, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update %s: %w", r.tabla, err)
	}
	return nil
}

// Delete elimina una parte por ID. Bloqueado por FK si tiene pólizas.
func (r *ParteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tabla), id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProtected
		}
		return fmt.Errorf("delete %s: %w", r.tabla, err)
	}
	return nil
}

func (r *ParteRepo) scanOne(query string, arg any) (*entity.Parte, error) {
	var p entity.Parte
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Nombre, &p.Documento, &p.Telefono, &p.Email, &p.Direccion, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.tabla, err)
	}
	return &p, nil
}
