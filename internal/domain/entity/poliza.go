package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Poliza representa un contrato de seguro.
//
// Los cuatro trimestres son un cache derivado de PrimaTotal y del nombre de la
// FormaPago vigente al momento del último guardado que tocó cualquiera de los
// dos; se recalculan en cada escritura que los afecte y la API los expone
// read-only.
type Poliza struct {
	ID             string
	Numero         string // único
	FechaInicio    time.Time
	FechaFin       time.Time
	Vigencia       string // descriptor libre, ej. "01/01/2025 - 31/12/2025"
	PrimaTotal     decimal.Decimal
	MontoAsegurado decimal.Decimal
	ITrimestre     decimal.Decimal
	IITrimestre    decimal.Decimal
	IIITrimestre   decimal.Decimal
	IVTrimestre    decimal.Decimal
	Renovacion     time.Time // fecha usada por la consulta de próximas renovaciones

	AseguradoraID string
	RamoID        string
	FormaPagoID   string
	ContratanteID string
	AseguradoID   string

	CreadoPor      string
	ActualizadoPor string // vacío hasta la primera actualización

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PolizaDetalle póliza con sus relaciones resueltas para lecturas y reportes.
// Los punteros son nil si la relación no pudo resolverse (dato legado).
type PolizaDetalle struct {
	Poliza
	Aseguradora *Aseguradora
	Ramo        *Ramo
	FormaPago   *FormaPago
	Contratante *Parte
	Asegurado   *Parte
}
