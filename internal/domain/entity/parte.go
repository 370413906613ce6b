package entity

import "time"

// ParteVariant distingue las dos variantes de parte de una póliza.
// Contratante firma el contrato; Asegurado es la persona cubierta.
// Comparten forma pero viven en tablas separadas, cada una con unique en documento.
type ParteVariant string

const (
	VariantContratante ParteVariant = "contratante"
	VariantAsegurado   ParteVariant = "asegurado"
)

// Parte es el registro de un contratante o asegurado.
// Documento es la clave natural única dentro de su variante.
type Parte struct {
	ID        string
	Nombre    string
	Documento string
	Telefono  string
	Email     string
	Direccion string
	CreatedAt time.Time
	UpdatedAt time.Time
}
