// Package excel renderiza los reportes tabulares como libros XLSX usando
// excelize: una hoja con cabecera en negrita, autofiltro y anchos razonables.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const hoja = "Reporte"

// ExcelizeExporter implementa usecase.TablaExporter usando excelize.
type ExcelizeExporter struct{}

// NewExcelizeExporter construye el exportador XLSX.
func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

// Extension devuelve "xlsx".
func (e *ExcelizeExporter) Extension() string { return "xlsx" }

// ContentType devuelve el MIME type del libro.
func (e *ExcelizeExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render genera el XLSX y devuelve sus bytes. Fila 1 título, fila 2 cabecera,
// datos a partir de la fila 3.
func (e *ExcelizeExporter) Render(titulo string, encabezados []string, filas [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(hoja)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx: limpiar hoja inicial: %w", err)
	}

	tituloStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "00467F"},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo título: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}

	if err := f.SetCellValue(hoja, "A1", titulo); err != nil {
		return nil, fmt.Errorf("xlsx: título: %w", err)
	}
	if err := f.SetCellStyle(hoja, "A1", "A1", tituloStyle); err != nil {
		return nil, fmt.Errorf("xlsx: título: %w", err)
	}

	ultima, err := excelize.ColumnNumberToName(len(encabezados))
	if err != nil {
		return nil, fmt.Errorf("xlsx: columnas: %w", err)
	}

	for i, h := range encabezados {
		celda, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: cabecera: %w", err)
		}
		if err := f.SetCellValue(hoja, celda, h); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera: %w", err)
		}
	}
	if err := f.SetCellStyle(hoja, "A2", ultima+"2", headerStyle); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}

	for i, fila := range filas {
		for j, celda := range fila {
			ref, err := excelize.CoordinatesToCellName(j+1, i+3)
			if err != nil {
				return nil, fmt.Errorf("xlsx: fila %d: %w", i+3, err)
			}
			if err := f.SetCellValue(hoja, ref, celda); err != nil {
				return nil, fmt.Errorf("xlsx: fila %d: %w", i+3, err)
			}
		}
	}

	if err := f.SetColWidth(hoja, "A", ultima, 18); err != nil {
		return nil, fmt.Errorf("xlsx: anchos: %w", err)
	}
	if err := f.AutoFilter(hoja, fmt.Sprintf("A2:%s%d", ultima, len(filas)+2), nil); err != nil {
		return nil, fmt.Errorf("xlsx: autofiltro: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
