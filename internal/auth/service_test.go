package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"turfbook/internal/shared/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Admin: config.AdminConfig{
			Key:          "topsecret",
			JWTSecret:    "signing-secret",
			JWTExpiresIn: 12 * time.Hour,
		},
	}
}

func TestIssueToken(t *testing.T) {
	svc := NewService(testConfig())

	token, err := svc.IssueToken("topsecret")
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if token.TokenType != "Bearer" {
		t.Errorf("token type = %q, want Bearer", token.TokenType)
	}
	if token.ExpiresIn != int64((12 * time.Hour).Seconds()) {
		t.Errorf("expires_in = %d, want %d", token.ExpiresIn, int64((12*time.Hour).Seconds()))
	}

	parsed, err := jwt.ParseWithClaims(token.AccessToken, &AdminClaims{}, func(tok *jwt.Token) (interface{}, error) {
		return []byte("signing-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("minted token does not parse: %v", err)
	}

	claims, ok := parsed.Claims.(*AdminClaims)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	if claims.Role != "admin" || claims.Type != "access" {
		t.Errorf("claims role/type = %s/%s, want admin/access", claims.Role, claims.Type)
	}
}

func TestIssueTokenWrongKey(t *testing.T) {
	svc := NewService(testConfig())

	if _, err := svc.IssueToken("guess"); err != ErrInvalidAdminKey {
		t.Errorf("IssueToken() error = %v, want ErrInvalidAdminKey", err)
	}
}
