package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrProtected        = errors.New("el recurso está referenciado por una o más pólizas")
	ErrTokenInvalid     = errors.New("token inválido o expirado")
	ErrTokenBlacklisted = errors.New("el token ya fue invalidado")
)

// ValidationError entrada inválida con detalle por campo.
// errors.Is(err, ErrInvalidInput) lo reconoce; errors.As extrae los campos.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "entrada inválida" }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError construye el error a partir de pares campo, detalle.
func NewValidationError(pairs ...string) *ValidationError {
	fields := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		fields[pairs[i]] = pairs[i+1]
	}
	return &ValidationError{Fields: fields}
}
