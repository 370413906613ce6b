package entity

import "time"

// Catálogos de referencia de una póliza. Los tres comparten forma
// (nombre + descripción) pero se persisten en tablas separadas y el
// borrado está bloqueado mientras alguna póliza los referencie.

// Aseguradora compañía emisora.
type Aseguradora struct {
	ID          string
	Nombre      string
	Descripcion string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Ramo categoría del seguro (auto, salud, vida...).
type Ramo struct {
	ID          string
	Nombre      string
	Descripcion string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FormaPago cadencia de cobro. Su nombre determina el reparto de cuotas
// trimestrales de la póliza.
type FormaPago struct {
	ID          string
	Nombre      string
	Descripcion string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
