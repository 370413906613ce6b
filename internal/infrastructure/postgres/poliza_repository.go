package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/segupro/polizas-api/internal/domain"
	"github.com/segupro/polizas-api/internal/domain/entity"
	"github.com/segupro/polizas-api/internal/domain/repository"
)

var _ repository.PolizaRepository = (*PolizaRepo)(nil)

// PolizaRepo implementación de PolizaRepository (usable con pool o tx).
type PolizaRepo struct {
	q Querier
}

// NewPolizaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPolizaRepository(q Querier) *PolizaRepo {
	return &PolizaRepo{q: q}
}

const polizaCols = `id, numero, fecha_inicio, fecha_fin, vigencia, prima_total, monto_asegurado,
	i_trimestre, ii_trimestre, iii_trimestre, iv_trimestre, renovacion,
	COALESCE(aseguradora_id, ''), COALESCE(ramo_id, ''), COALESCE(forma_pago_id, ''),
	COALESCE(contratante_id, ''), COALESCE(asegurado_id, ''),
	creado_por, COALESCE(actualizado_por, ''), created_at, updated_at`

// detalleSelect trae la póliza con sus cinco relaciones resueltas en una sola
// consulta. LEFT JOIN: una relación ausente (dato legado) no tumba la fila.
const detalleSelect = `
	SELECT p.id, p.numero, p.fecha_inicio, p.fecha_fin, p.vigencia, p.prima_total, p.monto_asegurado,
		p.i_trimestre, p.ii_trimestre, p.iii_trimestre, p.iv_trimestre, p.renovacion,
		COALESCE(p.aseguradora_id, ''), COALESCE(p.ramo_id, ''), COALESCE(p.forma_pago_id, ''),
		COALESCE(p.contratante_id, ''), COALESCE(p.asegurado_id, ''),
		p.creado_por, COALESCE(p.actualizado_por, ''), p.created_at, p.updated_at,
		a.id, a.nombre,
		r.id, r.nombre,
		f.id, f.nombre,
		c.id, c.nombre, c.documento, c.telefono, c.email, c.direccion,
		s.id, s.nombre, s.documento, s.telefono, s.email, s.direccion
	FROM polizas p
	LEFT JOIN aseguradoras a ON a.id = p.aseguradora_id
	LEFT JOIN ramos r ON r.id = p.ramo_id
	LEFT JOIN formas_pago f ON f.id = p.forma_pago_id
	LEFT JOIN contratantes c ON c.id = p.contratante_id
	LEFT JOIN asegurados s ON s.id = p.asegurado_id`

// Create persiste la póliza completa en una sola escritura: las cuotas ya
// vienen calculadas, ningún lector ve trimestres sin setear.
func (r *PolizaRepo) Create(p *entity.Poliza) error {
	query := `
		INSERT INTO polizas (id, numero, fecha_inicio, fecha_fin, vigencia, prima_total, monto_asegurado,
			i_trimestre, ii_trimestre, iii_trimestre, iv_trimestre, renovacion,
			aseguradora_id, ramo_id, forma_pago_id, contratante_id, asegurado_id,
			creado_por, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Numero, p.FechaInicio, p.FechaFin, p.Vigencia, p.PrimaTotal, p.MontoAsegurado,
		p.ITrimestre, p.IITrimestre, p.IIITrimestre, p.IVTrimestre, p.Renovacion,
		p.AseguradoraID, p.RamoID, p.FormaPagoID, p.ContratanteID, p.AseguradoID,
		p.CreadoPor, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert poliza: %w", err)
	}
	return nil
}

// GetByID obtiene una póliza sin resolver relaciones.
func (r *PolizaRepo) GetByID(id string) (*entity.Poliza, error) {
	query := `SELECT ` + polizaCols + ` FROM polizas WHERE id = $1`
	var p entity.Poliza
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Numero, &p.FechaInicio, &p.FechaFin, &p.Vigencia, &p.PrimaTotal, &p.MontoAsegurado,
		&p.ITrimestre, &p.IITrimestre, &p.IIITrimestre, &p.IVTrimestre, &p.Renovacion,
		&p.AseguradoraID, &p.RamoID, &p.FormaPagoID, &p.ContratanteID, &p.AseguradoID,
		&p.CreadoPor, &p.ActualizadoPor, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get poliza: %w", err)
	}
	return &p, nil
}

// GetDetalleByID obtiene una póliza con sus relaciones resueltas.
func (r *PolizaRepo) GetDetalleByID(id string) (*entity.PolizaDetalle, error) {
	rows, err := r.q.Query(context.Background(), detalleSelect+` WHERE p.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get poliza detalle: %w", err)
	}
	defer rows.Close()
	list, err := scanDetalles(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// List lista pólizas con filtros AND-combinados, orden ascendente por fecha_inicio.
func (r *PolizaRepo) List(filter repository.PolizaFilter, limit, offset int) ([]*entity.PolizaDetalle, error) {
	var conds []string
	var args []any

	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.AseguradoraID != "" {
		add("p.aseguradora_id = $%d", filter.AseguradoraID)
	}
	if filter.RamoID != "" {
		add("p.ramo_id = $%d", filter.RamoID)
	}
	if filter.ContratanteID != "" {
		add("p.contratante_id = $%d", filter.ContratanteID)
	}
	if filter.AseguradoID != "" {
		add("p.asegurado_id = $%d", filter.AseguradoID)
	}
	if filter.FechaDesde != nil && filter.FechaHasta != nil {
		add("p.fecha_inicio >= $%d", *filter.FechaDesde)
		add("p.fecha_inicio <= $%d", *filter.FechaHasta)
	}

	query := detalleSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY p.fecha_inicio ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list polizas: %w", err)
	}
	defer rows.Close()
	return scanDetalles(rows)
}

// ListProximasRenovacion pólizas con renovacion >= desde, sin cota superior,
// orden ascendente por renovacion.
func (r *PolizaRepo) ListProximasRenovacion(filter repository.RenovacionFilter) ([]*entity.PolizaDetalle, error) {
	conds := []string{"p.renovacion >= $1"}
	args := []any{filter.Desde}

	if filter.AseguradoraID != "" {
		args = append(args, filter.AseguradoraID)
		conds = append(conds, fmt.Sprintf("p.aseguradora_id = $%d", len(args)))
	}
	if filter.RamoID != "" {
		args = append(args, filter.RamoID)
		conds = append(conds, fmt.Sprintf("p.ramo_id = $%d", len(args)))
	}
	if filter.ContratanteID != "" {
		args = append(args, filter.ContratanteID)
		conds = append(conds, fmt.Sprintf("p.contratante_id = $%d", len(args)))
	}

	query := detalleSelect + " WHERE " + strings.Join(conds, " AND ") + " ORDER BY p.renovacion ASC"
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list proximas renovacion: %w", err)
	}
	defer rows.Close()
	return scanDetalles(rows)
}

// Update persiste todos los campos mutables de la póliza en una sola escritura.
func (r *PolizaRepo) Update(p *entity.Poliza) error {
	query := `
		UPDATE polizas SET numero = $2, fecha_inicio = $3, fecha_fin = $4, vigencia = $5,
			prima_total = $6, monto_asegurado = $7,
			i_trimestre = $8, ii_trimestre = $9, iii_trimestre = $10, iv_trimestre = $11,
			renovacion = $12, aseguradora_id = $13, ramo_id = $14, forma_pago_id = $15,
			actualizado_por = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Numero, p.FechaInicio, p.FechaFin, p.Vigencia,
		p.PrimaTotal, p.MontoAsegurado,
		p.ITrimestre, p.IITrimestre, p.IIITrimestre, p.IVTrimestre,
		p.Renovacion, p.AseguradoraID, p.RamoID, p.FormaPagoID,
		p.ActualizadoPor, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update poliza: %w", err)
	}
	return nil
}

// Delete elimina una póliza por ID.
func (r *PolizaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM polizas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete poliza: %w", err)
	}
	return nil
}

func scanDetalles(rows pgx.Rows) ([]*entity.PolizaDetalle, error) {
	var list []*entity.PolizaDetalle
	for rows.Next() {
		var d entity.PolizaDetalle
		var (
			aID, aNombre           *string
			rID, rNombre           *string
			fID, fNombre           *string
			cID, cNombre, cDoc     *string
			cTel, cEmail, cDir     *string
			sID, sNombre, sDoc     *string
			sTel, sEmail, sDir     *string
		)
		err := rows.Scan(
			&d.ID, &d.Numero, &d.FechaInicio, &d.FechaFin, &d.Vigencia, &d.PrimaTotal, &d.MontoAsegurado,
			&d.ITrimestre, &d.IITrimestre, &d.IIITrimestre, &d.IVTrimestre, &d.Renovacion,
			&d.AseguradoraID, &d.RamoID, &d.FormaPagoID, &d.ContratanteID, &d.AseguradoID,
			&d.CreadoPor, &d.ActualizadoPor, &d.CreatedAt, &d.UpdatedAt,
			&aID, &aNombre,
			&rID, &rNombre,
			&fID, &fNombre,
			&cID, &cNombre, &cDoc, &cTel, &cEmail, &cDir,
			&sID, &sNombre, &sDoc, &sTel, &sEmail, &sDir,
		)
		if err != nil {
			return nil, fmt.Errorf("scan poliza detalle: %w", err)
		}
		if aID != nil {
			d.Aseguradora = &entity.Aseguradora{ID: *aID, Nombre: deref(aNombre)}
		}
		if rID != nil {
			d.Ramo = &entity.Ramo{ID: *rID, Nombre: deref(rNombre)}
		}
		if fID != nil {
			d.FormaPago = &entity.FormaPago{ID: *fID, Nombre: deref(fNombre)}
		}
		if cID != nil {
			d.Contratante = &entity.Parte{
				ID: *cID, Nombre: deref(cNombre), Documento: deref(cDoc),
				Telefono: deref(cTel), Email: deref(cEmail), Direccion: deref(cDir),
			}
		}
		if sID != nil {
			d.Asegurado = &entity.Parte{
				ID: *sID, Nombre: deref(sNombre), Documento: deref(sDoc),
				Telefono: deref(sTel), Email: deref(sEmail), Direccion: deref(sDir),
			}
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
