// Package pdf renderiza los reportes tabulares del backoffice como documentos
// PDF apaisados usando Maroto v2: título, cabecera de tabla y una fila por
// póliza, con pie de página con fecha de generación.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoExporter implementa usecase.TablaExporter usando Maroto v2.
type MarotoExporter struct{}

// NewMarotoExporter construye el exportador PDF.
func NewMarotoExporter() *MarotoExporter { return &MarotoExporter{} }

// Extension devuelve "pdf".
func (e *MarotoExporter) Extension() string { return "pdf" }

// ContentType devuelve el MIME type del documento.
func (e *MarotoExporter) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes. Las columnas se reparten en
// partes iguales; A4 horizontal para que entren las tablas anchas.
func (e *MarotoExporter) Render(titulo string, encabezados []string, filas [][]string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(titulo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(tituloRow(titulo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(headerRow(encabezados))
	for _, fila := range filas {
		m.AddRows(datosRow(fila))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(pieRow(len(filas)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// tituloRow: título del reporte y fecha de generación.
func tituloRow(titulo string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

// headerRow: cabecera de la tabla, columnas en partes iguales.
func headerRow(encabezados []string) core.Row {
	cols := make([]core.Col, 0, len(encabezados))
	for _, h := range encabezados {
		cols = append(cols, col.New().Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Color: colorPrimary, Top: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

// datosRow: una fila de datos.
func datosRow(fila []string) core.Row {
	cols := make([]core.Col, 0, len(fila))
	for _, celda := range fila {
		cols = append(cols, col.New().Add(text.New(celda, props.Text{
			Size: 7, Top: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

// pieRow: total de filas del reporte.
func pieRow(total int) core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de registros: %d", total), props.Text{
				Size: 7.5, Color: colorGray, Top: 1,
			}),
		),
	)
}
