package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse par de tokens más datos del usuario, como los espera el
// cliente del backoffice.
type LoginResponse struct {
	Access    string `json:"access"`
	Refresh   string `json:"refresh"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Rol       string `json:"rol"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// RefreshRequest canje de un refresh token por un nuevo par.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse nuevo par de tokens (el refresh anterior queda invalidado).
type RefreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// VerifyRequest token a validar.
type VerifyRequest struct {
	Token string `json:"token"`
}

// LogoutRequest refresh token a invalidar.
type LogoutRequest struct {
	Refresh string `json:"refresh"`
}
