package postgres

import (
	"context"
	"fmt"

	"github.com/segupro/polizas-api/internal/domain/entity"
	"github.com/segupro/polizas-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo implementación de ReporteRepository sobre PostgreSQL.
// Los parámetros del reporte se guardan como JSONB (pgx codifica el map directo).
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

// Create registra un reporte generado (append-only).
func (r *ReporteRepo) Create(rep *entity.ReporteGenerado) error {
	query := `
		INSERT INTO reportes_generados (id, usuario_id, fecha_generacion, parametros, archivo_path, tipo_reporte)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		rep.ID, rep.UsuarioID, rep.FechaGeneracion, rep.Parametros, rep.ArchivoPath, rep.TipoReporte,
	)
	if err != nil {
		return fmt.Errorf("insert reporte: %w", err)
	}
	return nil
}

// ListByUsuario lista los reportes de un usuario, del más reciente al más antiguo.
func (r *ReporteRepo) ListByUsuario(usuarioID string, limit, offset int) ([]*entity.ReporteGenerado, error) {
	query := `
		SELECT id, usuario_id, fecha_generacion, parametros, archivo_path, tipo_reporte
		FROM reportes_generados
		WHERE usuario_id = $1
		ORDER BY fecha_generacion DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, usuarioID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reportes: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReporteGenerado
	for rows.Next() {
		var rep entity.ReporteGenerado
		if err := rows.Scan(&rep.ID, &rep.UsuarioID, &rep.FechaGeneracion, &rep.Parametros, &rep.ArchivoPath, &rep.TipoReporte); err != nil {
			return nil, fmt.Errorf("scan reporte: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}
