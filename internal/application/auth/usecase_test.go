package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/segupro/polizas-api/internal/application/auth"
	"github.com/segupro/polizas-api/internal/application/dto"
	"github.com/segupro/polizas-api/internal/domain"
	"github.com/segupro/polizas-api/internal/domain/entity"
	"github.com/segupro/polizas-api/internal/domain/repository"
	"github.com/segupro/polizas-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	porID map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	clone := *u
	f.porID[u.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.porID {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(repository.UserFilter, int, int) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	clone := *u
	f.porID[u.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.porID, id)
	return nil
}

type fakeTokenRepo struct {
	bloqueados map[string]time.Time
}

func (f *fakeTokenRepo) Blacklist(jti string, expiresAt time.Time) error {
	if _, ok := f.bloqueados[jti]; ok {
		return domain.ErrTokenBlacklisted
	}
	f.bloqueados[jti] = expiresAt
	return nil
}

func (f *fakeTokenRepo) IsBlacklisted(jti string) (bool, error) {
	_, ok := f.bloqueados[jti]
	return ok, nil
}

func (f *fakeTokenRepo) DeleteExpired() (int64, error) {
	var n int64
	for jti, exp := range f.bloqueados {
		if exp.Before(time.Now()) {
			delete(f.bloqueados, jti)
			n++
		}
	}
	return n, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	authTestSecret   = "auth-test-secret"
	authTestPassword = "clave-segura-1"
)

type authEnv struct {
	uc     *auth.AuthUseCase
	users  *fakeUserRepo
	tokens *fakeTokenRepo
	user   *entity.User
}

func newAuthEnv(t *testing.T) *authEnv {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(authTestPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		ID:           "user-1",
		Username:     "ana",
		PasswordHash: string(hash),
		Rol:          entity.RolAnalista,
		FirstName:    "Ana",
		LastName:     "Lista",
		IsActive:     true,
	}
	users := &fakeUserRepo{porID: map[string]*entity.User{user.ID: user}}
	tokens := &fakeTokenRepo{bloqueados: map[string]time.Time{}}
	uc := auth.NewAuthUseCase(users, tokens, auth.JWTConfig{
		Secret:          authTestSecret,
		ExpMinutes:      15,
		RefreshExpHours: 24,
		Issuer:          "polizas-api-test",
	})
	return &authEnv{uc: uc, users: users, tokens: tokens, user: user}
}

func (env *authEnv) login(t *testing.T) *dto.LoginResponse {
	t.Helper()
	out, err := env.uc.Login(dto.LoginRequest{Username: "ana", Password: authTestPassword})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	env := newAuthEnv(t)
	out := env.login(t)

	assert.NotEmpty(t, out.Access)
	assert.NotEmpty(t, out.Refresh)
	assert.Equal(t, "ana", out.Username)
	assert.Equal(t, entity.RolAnalista, out.Rol)
	assert.Equal(t, "Ana", out.FirstName)

	// El access lleva los claims del usuario.
	claims, err := jwt.ParseType(authTestSecret, out.Access, jwt.TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, entity.RolAnalista, claims.Rol)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	env := newAuthEnv(t)
	_, err := env.uc.Login(dto.LoginRequest{Username: "ana", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	env := newAuthEnv(t)
	_, err := env.uc.Login(dto.LoginRequest{Username: "nadie", Password: authTestPassword})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	env := newAuthEnv(t)
	env.user.IsActive = false
	env.users.porID[env.user.ID] = env.user

	_, err := env.uc.Login(dto.LoginRequest{Username: "ana", Password: authTestPassword})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh — rotación de un solo uso
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_RotaElPar(t *testing.T) {
	env := newAuthEnv(t)
	sesion := env.login(t)

	out, err := env.uc.Refresh(sesion.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Access)
	assert.NotEmpty(t, out.Refresh)
	assert.NotEqual(t, sesion.Refresh, out.Refresh, "el refresh debe rotar en cada canje")

	// El refresh canjeado queda quemado: un segundo canje falla.
	_, err = env.uc.Refresh(sesion.Refresh)
	assert.ErrorIs(t, err, domain.ErrTokenBlacklisted)

	// El nuevo refresh sí sirve.
	_, err = env.uc.Refresh(out.Refresh)
	assert.NoError(t, err)
}

func TestRefresh_TokenInvalido(t *testing.T) {
	env := newAuthEnv(t)
	_, err := env.uc.Refresh("no.es.jwt")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestRefresh_AccessNoSirveComoRefresh(t *testing.T) {
	env := newAuthEnv(t)
	sesion := env.login(t)

	_, err := env.uc.Refresh(sesion.Access)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestRefresh_CuentaDesactivadaDespuesDeEmitir(t *testing.T) {
	env := newAuthEnv(t)
	sesion := env.login(t)

	env.user.IsActive = false
	env.users.porID[env.user.ID] = env.user

	_, err := env.uc.Refresh(sesion.Refresh)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRefresh_RecogeRolActualizado(t *testing.T) {
	env := newAuthEnv(t)
	sesion := env.login(t)

	// Un admin promovió al usuario entre el login y el refresh.
	env.user.Rol = entity.RolAdmin
	env.users.porID[env.user.ID] = env.user

	out, err := env.uc.Refresh(sesion.Refresh)
	require.NoError(t, err)

	claims, err := jwt.ParseType(authTestSecret, out.Access, jwt.TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, entity.RolAdmin, claims.Rol, "el nuevo access debe reflejar el rol vigente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Verify y Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestVerify_AccessValido(t *testing.T) {
	env := newAuthEnv(t)
	sesion := env.login(t)
	assert.NoError(t, env.uc.Verify(sesion.Access))
}

func TestVerify_RefreshBlacklisteado(t *testing.T) {
	env := newAuthEnv(t)
	sesion := env.login(t)

	require.NoError(t, env.uc.Logout(sesion.Refresh))
	assert.ErrorIs(t, env.uc.Verify(sesion.Refresh), domain.ErrTokenBlacklisted)
}

func TestVerify_TokenInvalido(t *testing.T) {
	env := newAuthEnv(t)
	assert.ErrorIs(t, env.uc.Verify("basura"), domain.ErrTokenInvalid)
}

func TestLogout_InvalidaElRefresh(t *testing.T) {
	env := newAuthEnv(t)
	sesion := env.login(t)

	require.NoError(t, env.uc.Logout(sesion.Refresh))

	_, err := env.uc.Refresh(sesion.Refresh)
	assert.ErrorIs(t, err, domain.ErrTokenBlacklisted)

	// El segundo logout reporta que el token ya estaba invalidado.
	assert.ErrorIs(t, env.uc.Logout(sesion.Refresh), domain.ErrTokenBlacklisted)
}

func TestLogout_AccessNoSePuedeDeslogear(t *testing.T) {
	env := newAuthEnv(t)
	sesion := env.login(t)
	assert.ErrorIs(t, env.uc.Logout(sesion.Access), domain.ErrTokenInvalid)
}
