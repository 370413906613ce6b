package dto

// CatalogoRequest alta/edición de un registro de catálogo
// (aseguradora, ramo o forma de pago).
type CatalogoRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

// CatalogoResponse registro de catálogo persistido.
type CatalogoResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}
