package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/segupro/polizas-api/internal/domain"
	"github.com/segupro/polizas-api/internal/domain/entity"
	"github.com/segupro/polizas-api/internal/domain/repository"
)

var (
	_ repository.AseguradoraRepository = (*AseguradoraRepo)(nil)
	_ repository.RamoRepository        = (*RamoRepo)(nil)
	_ repository.FormaPagoRepository   = (*FormaPagoRepo)(nil)
)

// Los tres catálogos comparten forma (nombre + descripción); catalogoRepo
// concentra el SQL parametrizado por tabla y cada adaptador tipado delega.
type catalogoRepo struct {
	q     Querier
	tabla string
}

type catalogoRow struct {
	ID          string
	Nombre      string
	Descripcion string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r *catalogoRepo) create(row catalogoRow) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, nombre, descripcion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`, r.tabla)
	_, err := r.q.Exec(context.Background(), query, row.ID, row.Nombre, row.Descripcion, row.CreatedAt, row.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", r.tabla, err)
	}
	return nil
}

func (r *catalogoRepo) getByID(id string) (*catalogoRow, error) {
	query := fmt.Sprintf(`
		SELECT id, nombre, descripcion, created_at, updated_at
		FROM %s WHERE id = $1`, r.tabla)
	var row catalogoRow
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&row.ID, &row.Nombre, &row.Descripcion, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.tabla, err)
	}
	return &row, nil
}

func (r *catalogoRepo) list(limit, offset int) ([]catalogoRow, error) {
	query := fmt.Sprintf(`
		SELECT id, nombre, descripcion, created_at, updated_at
		FROM %s ORDER BY nombre LIMIT $1 OFFSET $2`, r.tabla)
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.tabla, err)
	}
	defer rows.Close()
	var list []catalogoRow
	for rows.Next() {
		var row catalogoRow
		if err := rows.Scan(&row.ID, &row.Nombre, &row.Descripcion, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.tabla, err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *catalogoRepo) update(row catalogoRow) error {
	query := fmt.Sprintf(`
		UPDATE %s SET nombre = $2, descripcion = $3, updated_at = $4 WHERE id = $1`, r.tabla)
	_, err := r.q.Exec(context.Background(), query, row.ID, row.Nombre, row.Descripcion, row.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.tabla, err)
	}
	return nil
}

func (r *catalogoRepo) delete(id string) error {
	_, err := r.q.Exec(context.Background(), fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tabla), id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProtected
		}
		return fmt.Errorf("delete %s: %w", r.tabla, err)
	}
	return nil
}

// ── Aseguradoras ──────────────────────────────────────────────────────────────

// AseguradoraRepo implementación de AseguradoraRepository.
type AseguradoraRepo struct{ base catalogoRepo }

// NewAseguradoraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAseguradoraRepository(q Querier) *AseguradoraRepo {
	return &AseguradoraRepo{base: catalogoRepo{q: q, tabla: "aseguradoras"}}
}

func (r *AseguradoraRepo) Create(a *entity.Aseguradora) error {
	return r.base.create(catalogoRow{ID: a.ID, Nombre: a.Nombre, Descripcion: a.Descripcion, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt})
}

func (r *AseguradoraRepo) GetByID(id string) (*entity.Aseguradora, error) {
	row, err := r.base.getByID(id)
	if err != nil || row == nil {
		return nil, err
	}
	return &entity.Aseguradora{ID: row.ID, Nombre: row.Nombre, Descripcion: row.Descripcion, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}, nil
}

func (r *AseguradoraRepo) List(limit, offset int) ([]*entity.Aseguradora, error) {
	rows, err := r.base.list(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Aseguradora, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.Aseguradora{ID: row.ID, Nombre: row.Nombre, Descripcion: row.Descripcion, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt})
	}
	return out, nil
}

func (r *AseguradoraRepo) Update(a *entity.Aseguradora) error {
	return r.base.update(catalogoRow{ID: a.ID, Nombre: a.Nombre, Descripcion: a.Descripcion, UpdatedAt: a.UpdatedAt})
}

func (r *AseguradoraRepo) Delete(id string) error { return r.base.delete(id) }

// ── Ramos ─────────────────────────────────────────────────────────────────────

// RamoRepo implementación de RamoRepository.
type RamoRepo struct{ base catalogoRepo }

// NewRamoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRamoRepository(q Querier) *RamoRepo {
	return &RamoRepo{base: catalogoRepo{q: q, tabla: "ramos"}}
}

func (r *RamoRepo) Create(m *entity.Ramo) error {
	return r.base.create(catalogoRow{ID: m.ID, Nombre: m.Nombre, Descripcion: m.Descripcion, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt})
}

func (r *RamoRepo) GetByID(id string) (*entity.Ramo, error) {
	row, err := r.base.getByID(id)
	if err != nil || row == nil {
		return nil, err
	}
	return &entity.Ramo{ID: row.ID, Nombre: row.Nombre, Descripcion: row.Descripcion, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}, nil
}

func (r *RamoRepo) List(limit, offset int) ([]*entity.Ramo, error) {
	rows, err := r.base.list(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Ramo, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.Ramo{ID: row.ID, Nombre: row.Nombre, Descripcion: row.Descripcion, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt})
	}
	return out, nil
}

func (r *RamoRepo) Update(m *entity.Ramo) error {
	return r.base.update(catalogoRow{ID: m.ID, Nombre: m.Nombre, Descripcion: m.Descripcion, UpdatedAt: m.UpdatedAt})
}

func (r *RamoRepo) Delete(id string) error { return r.base.delete(id) }

// ── Formas de pago ────────────────────────────────────────────────────────────

// FormaPagoRepo implementación de FormaPagoRepository.
type FormaPagoRepo struct{ base catalogoRepo }

// NewFormaPagoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFormaPagoRepository(q Querier) *FormaPagoRepo {
	return &FormaPagoRepo{base: catalogoRepo{q: q, tabla: "formas_pago"}}
}

func (r *FormaPagoRepo) Create(f *entity.FormaPago) error {
	return r.base.create(catalogoRow{ID: f.ID, Nombre: f.Nombre, Descripcion: f.Descripcion, CreatedAt: f.CreatedAt, UpdatedAt: f.UpdatedAt})
}

func (r *FormaPagoRepo) GetByID(id string) (*entity.FormaPago, error) {
	row, err := r.base.getByID(id)
	if err != nil || row == nil {
		return nil, err
	}
	return &entity.FormaPago{ID: row.ID, Nombre: row.Nombre, Descripcion: row.Descripcion, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}, nil
}

func (r *FormaPagoRepo) List(limit, offset int) ([]*entity.FormaPago, error) {
	rows, err := r.base.list(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.FormaPago, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.FormaPago{ID: row.ID, Nombre: row.Nombre, Descripcion: row.Descripcion, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt})
	}
	return out, nil
}

func (r *FormaPagoRepo) Update(f *entity.FormaPago) error {
	return r.base.update(catalogoRow{ID: f.ID, Nombre: f.Nombre, Descripcion: f.Descripcion, UpdatedAt: f.UpdatedAt})
}

func (r *FormaPagoRepo) Delete(id string) error { return r.base.delete(id) }
