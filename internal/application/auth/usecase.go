package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/segupro/polizas-api/internal/application/dto"
	"github.com/segupro/polizas-api/internal/domain"
	"github.com/segupro/polizas-api/internal/domain/repository"
	"github.com/segupro/polizas-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret          string
	ExpMinutes      int
	RefreshExpHours int
	Issuer          string
}

// AuthUseCase ciclo de sesión: login, refresh, verify y logout.
// El logout invalida el refresh token vía blacklist persistida; el access
// token muere solo por expiración (vida corta).
type AuthUseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokenRepo: tokenRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password y emite el par access+refresh.
// La respuesta incluye rol y nombre para que el cliente no haga otra llamada.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}

	access, refresh, err := uc.emitirPar(jwt.UserInfo{
		ID: user.ID, Rol: user.Rol, FirstName: user.FirstName, LastName: user.LastName,
	})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Access:    access,
		Refresh:   refresh,
		Username:  user.Username,
		Email:     user.Email,
		Rol:       user.Rol,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

// Refresh canjea un refresh token válido por un par nuevo. El refresh
// presentado queda blacklisteado (rotación: cada refresh sirve una sola vez).
func (uc *AuthUseCase) Refresh(refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := jwt.ParseType(uc.jwtCfg.Secret, refreshToken, jwt.TypeRefresh)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	blacklisted, err := uc.tokenRepo.IsBlacklisted(claims.ID)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, domain.ErrTokenBlacklisted
	}

	// Releer el usuario: el rol pudo cambiar y la cuenta pudo desactivarse
	// desde la emisión del refresh.
	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrForbidden
	}

	if err := uc.tokenRepo.Blacklist(claims.ID, claims.ExpiresAt.Time); err != nil && err != domain.ErrTokenBlacklisted {
		return nil, err
	}

	access, refresh, err := uc.emitirPar(jwt.UserInfo{
		ID: user.ID, Rol: user.Rol, FirstName: user.FirstName, LastName: user.LastName,
	})
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{Access: access, Refresh: refresh}, nil
}

// Verify valida un token presentado (firma, expiración y, si es refresh,
// que no esté blacklisteado).
func (uc *AuthUseCase) Verify(token string) error {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return domain.ErrTokenInvalid
	}
	if claims.TokenType == jwt.TypeRefresh {
		blacklisted, err := uc.tokenRepo.IsBlacklisted(claims.ID)
		if err != nil {
			return err
		}
		if blacklisted {
			return domain.ErrTokenBlacklisted
		}
	}
	return nil
}

// Logout blacklistea el refresh presentado. Token inválido o ya
// blacklisteado se reporta al caller (400 en la capa HTTP).
func (uc *AuthUseCase) Logout(refreshToken string) error {
	claims, err := jwt.ParseType(uc.jwtCfg.Secret, refreshToken, jwt.TypeRefresh)
	if err != nil {
		return domain.ErrTokenInvalid
	}
	return uc.tokenRepo.Blacklist(claims.ID, claims.ExpiresAt.Time)
}

func (uc *AuthUseCase) emitirPar(info jwt.UserInfo) (access, refresh string, err error) {
	access, _, err = jwt.Generate(uc.jwtCfg.Secret, info, jwt.TypeAccess, uc.jwtCfg.Issuer,
		time.Duration(uc.jwtCfg.ExpMinutes)*time.Minute)
	if err != nil {
		return "", "", err
	}
	refresh, _, err = jwt.Generate(uc.jwtCfg.Secret, info, jwt.TypeRefresh, uc.jwtCfg.Issuer,
		time.Duration(uc.jwtCfg.RefreshExpHours)*time.Hour)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
