package dto

// ParteRequest payload de contratante o asegurado. Documento es la clave
// natural; nombre y documento son obligatorios en el alta.
type ParteRequest struct {
	Nombre    string `json:"nombre"`
	Documento string `json:"documento"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// ParteUpdateRequest actualización parcial de una parte.
type ParteUpdateRequest struct {
	Nombre    *string `json:"nombre,omitempty"`
	Documento *string `json:"documento,omitempty"`
	Telefono  *string `json:"telefono,omitempty"`
	Email     *string `json:"email,omitempty"`
	Direccion *string `json:"direccion,omitempty"`
}

// ParteResponse registro persistido.
type ParteResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Documento string `json:"documento"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}
