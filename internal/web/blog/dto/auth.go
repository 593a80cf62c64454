package dto

// LoginRequest body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest body of POST /api/auth/register, gated by the setup secret.
type RegisterRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	SetupToken string `json:"setupToken"`
}

// CreateAdminRequest body of POST /api/admins. Password may be empty, which
// creates an account that cannot log in until a hash is set out of band.
type CreateAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// EnsureSeedRequest body of POST /api/admins/ensure-seed.
type EnsureSeedRequest struct {
	SetupToken string `json:"setupToken"`
}
