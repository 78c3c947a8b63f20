package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistroRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Nombre   string `json:"nombre"   validate:"required,min=2,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	User         UsuarioResponse `json:"user"`
}
