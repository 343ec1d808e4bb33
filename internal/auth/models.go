package auth

import "github.com/golang-jwt/jwt/v4"

// TokenRequest exchanges the facility admin key for a bearer token
type TokenRequest struct {
	AdminKey string `json:"admin_key" binding:"required"`
}

// TokenResponse carries the minted access token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AdminClaims are the claims minted for the admin surface
type AdminClaims struct {
	Role string `json:"role"`
	Type string `json:"type"`
	jwt.RegisteredClaims
}
