package dto

// ── auth requests ──

// RegisterRequest creates a new account. Role defaults to staff when omitted.
type RegisterRequest struct {
	Name     string `json:"name"     binding:"required,max=100"`
	Email    string `json:"email"    binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role"     binding:"omitempty,oneof=staff manager"`
}

// LoginRequest authenticates by email and password.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest exchanges a refresh token for a new token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest updates the caller's own profile fields.
type UpdateProfileRequest struct {
	Name  *string `json:"name"  binding:"omitempty,max=100"`
	Email *string `json:"email" binding:"omitempty,email,max=255"`
}

// ── auth responses ──

// TokenResponse carries the issued token pair.
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // access token lifetime in seconds
	User         UserResponse `json:"user"`
}

// UserResponse is the sanitized user view.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
