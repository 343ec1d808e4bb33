package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"turfbook/internal/shared/config"
)

// ErrInvalidAdminKey is returned when the presented key does not match the
// configured one
var ErrInvalidAdminKey = errors.New("invalid admin key")

// Service interface defines the contract for admin token issuance
type Service interface {
	IssueToken(adminKey string) (*TokenResponse, error)
}

type service struct {
	cfg *config.Config
	now func() time.Time
}

func NewService(cfg *config.Config) Service {
	return &service{cfg: cfg, now: time.Now}
}

// IssueToken mints an HS256 access token for the admin surface. The single
// shared admin key is the only credential; there are no user accounts.
func (s *service) IssueToken(adminKey string) (*TokenResponse, error) {
	if subtle.ConstantTimeCompare([]byte(adminKey), []byte(s.cfg.Admin.Key)) != 1 {
		return nil, ErrInvalidAdminKey
	}

	now := s.now()
	claims := AdminClaims{
		Role: "admin",
		Type: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Admin.JWTExpiresIn)),
			Issuer:    "turfbook",
			Subject:   "admin",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Admin.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.cfg.Admin.JWTExpiresIn.Seconds()),
	}, nil
}
