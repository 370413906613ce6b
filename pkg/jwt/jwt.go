package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Tipos de token emitidos. El refresh solo sirve para obtener un nuevo par,
// nunca para autenticar peticiones; el middleware exige type == "access".
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Rol viaja en el token para que el middleware RBAC decida sin consultar la DB;
// FirstName/LastName permiten al cliente mostrar el nombre sin una segunda llamada.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Rol       string `json:"rol"` // "admin" | "analista"
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	TokenType string `json:"type"` // "access" | "refresh"
}

// UserInfo datos del usuario que viajan dentro del token.
type UserInfo struct {
	ID        string
	Rol       string
	FirstName string
	LastName  string
}

// Generate genera un token JWT firmado del tipo indicado. El jti (ID del token)
// es un UUID nuevo; para refresh tokens es la clave de la blacklist.
func Generate(secret string, user UserInfo, tokenType, issuer string, ttl time.Duration) (token string, jti string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vacío")
	}
	if tokenType != TypeAccess && tokenType != TypeRefresh {
		return "", "", fmt.Errorf("jwt: tipo de token desconocido %q", tokenType)
	}
	now := time.Now()
	jti = uuid.New().String()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    user.ID,
		Rol:       user.Rol,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		TokenType: tokenType,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString([]byte(secret))
	return token, jti, err
}

// Parse valida el token y devuelve sus claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// ParseType valida el token y además exige que sea del tipo indicado.
func ParseType(secret, tokenString, tokenType string) (*Claims, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("se esperaba token %s, llegó %s", tokenType, claims.TokenType)
	}
	return claims, nil
}
