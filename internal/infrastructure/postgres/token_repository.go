package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/segupro/polizas-api/internal/domain"
	"github.com/segupro/polizas-api/internal/domain/repository"
)

var _ repository.TokenRepository = (*TokenRepo)(nil)

// TokenRepo blacklist de refresh tokens sobre PostgreSQL. La clave primaria
// sobre jti hace que el segundo canje del mismo token falle en el INSERT,
// también bajo concurrencia.
type TokenRepo struct {
	q Querier
}

// NewTokenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTokenRepository(q Querier) *TokenRepo {
	return &TokenRepo{q: q}
}

// Blacklist registra el jti. ErrTokenBlacklisted si ya estaba registrado.
func (r *TokenRepo) Blacklist(jti string, expiresAt time.Time) error {
	query := `
		INSERT INTO tokens_bloqueados (jti, expires_at, created_at)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, jti, expiresAt, time.Now())
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTokenBlacklisted
		}
		return fmt.Errorf("blacklist token: %w", err)
	}
	return nil
}

// IsBlacklisted verifica si el jti está registrado.
func (r *TokenRepo) IsBlacklisted(jti string) (bool, error) {
	var found string
	err := r.q.QueryRow(context.Background(), `SELECT jti FROM tokens_bloqueados WHERE jti = $1`, jti).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check token: %w", err)
	}
	return true, nil
}

// DeleteExpired purga filas cuyo token ya expiró por su propio exp.
func (r *TokenRepo) DeleteExpired() (int64, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM tokens_bloqueados WHERE expires_at < $1`, time.Now())
	if err != nil {
		return 0, fmt.Errorf("purge tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
