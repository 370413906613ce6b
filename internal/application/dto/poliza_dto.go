package dto

import "github.com/shopspring/decimal"

// CreatePolizaRequest alta de póliza. Los trimestres no se aceptan: son
// derivados y los calcula el servidor. Las fechas van como "YYYY-MM-DD".
type CreatePolizaRequest struct {
	Numero         string          `json:"numero"`
	FechaInicio    string          `json:"fecha_inicio"`
	FechaFin       string          `json:"fecha_fin"`
	Vigencia       string          `json:"vigencia,omitempty"`
	PrimaTotal     decimal.Decimal `json:"prima_total"`
	MontoAsegurado decimal.Decimal `json:"monto_asegurado"`
	Renovacion     string          `json:"renovacion"`

	AseguradoraID string `json:"aseguradora_id"`
	RamoID        string `json:"ramo_id"`
	FormaPagoID   string `json:"forma_pago_id"`

	Contratante ParteRequest `json:"contratante"`
	Asegurado   ParteRequest `json:"asegurado"`
}

// UpdatePolizaRequest actualización parcial. Si viene prima_total o
// forma_pago_id se recalculan las cuotas; los payloads anidados de partes
// actualizan in-place los registros ya vinculados.
type UpdatePolizaRequest struct {
	Numero         *string          `json:"numero,omitempty"`
	FechaInicio    *string          `json:"fecha_inicio,omitempty"`
	FechaFin       *string          `json:"fecha_fin,omitempty"`
	Vigencia       *string          `json:"vigencia,omitempty"`
	PrimaTotal     *decimal.Decimal `json:"prima_total,omitempty"`
	MontoAsegurado *decimal.Decimal `json:"monto_asegurado,omitempty"`
	Renovacion     *string          `json:"renovacion,omitempty"`

	AseguradoraID *string `json:"aseguradora_id,omitempty"`
	RamoID        *string `json:"ramo_id,omitempty"`
	FormaPagoID   *string `json:"forma_pago_id,omitempty"`

	Contratante *ParteUpdateRequest `json:"contratante,omitempty"`
	Asegurado   *ParteUpdateRequest `json:"asegurado,omitempty"`
}

// PolizaResponse póliza con relaciones resueltas. Los campos *Nombre van
// vacíos si la relación no pudo resolverse.
type PolizaResponse struct {
	ID             string          `json:"id"`
	Numero         string          `json:"numero"`
	FechaInicio    string          `json:"fecha_inicio"`
	FechaFin       string          `json:"fecha_fin"`
	Vigencia       string          `json:"vigencia,omitempty"`
	PrimaTotal     decimal.Decimal `json:"prima_total"`
	MontoAsegurado decimal.Decimal `json:"monto_asegurado"`
	ITrimestre     decimal.Decimal `json:"i_trimestre"`
	IITrimestre    decimal.Decimal `json:"ii_trimestre"`
	IIITrimestre   decimal.Decimal `json:"iii_trimestre"`
	IVTrimestre    decimal.Decimal `json:"iv_trimestre"`
	Renovacion     string          `json:"renovacion"`

	AseguradoraID     string `json:"aseguradora_id"`
	AseguradoraNombre string `json:"aseguradora_nombre,omitempty"`
	RamoID            string `json:"ramo_id"`
	RamoNombre        string `json:"ramo_nombre,omitempty"`
	FormaPagoID       string `json:"forma_pago_id"`
	FormaPagoNombre   string `json:"forma_pago_nombre,omitempty"`

	Contratante *ParteResponse `json:"contratante,omitempty"`
	Asegurado   *ParteResponse `json:"asegurado,omitempty"`

	CreadoPor      string `json:"creado_por,omitempty"`
	ActualizadoPor string `json:"actualizado_por,omitempty"`
}

// OpcionesResponse listas de lookup para poblar formularios del cliente.
type OpcionesResponse struct {
	Aseguradoras []*CatalogoResponse `json:"aseguradoras"`
	Ramos        []*CatalogoResponse `json:"ramos"`
	FormasPago   []*CatalogoResponse `json:"formas_pago"`
	Contratantes []*ParteResponse    `json:"contratantes"`
	Asegurados   []*ParteResponse    `json:"asegurados"`
}
