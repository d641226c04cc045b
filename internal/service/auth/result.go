package auth

import "github.com/minhngo/englishpal-backend/internal/domain"

// AuthResult holds the outcome of a successful register, login or refresh:
// a signed access token, the raw refresh token and the user it belongs to.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}
