package repository

import "time"

// TokenRepository blacklist de refresh tokens (por jti).
// Un jti blacklisteado no puede volver a canjearse; las filas expiradas se
// pueden purgar porque el token ya no valida por su propio exp.
type TokenRepository interface {
	// Blacklist registra el jti. Devuelve ErrTokenBlacklisted si ya estaba.
	Blacklist(jti string, expiresAt time.Time) error
	IsBlacklisted(jti string) (bool, error)
	DeleteExpired() (int64, error)
}
