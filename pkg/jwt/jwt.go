package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"campaign-srv/pkg/scope"
)

const defaultTTL = 24 * time.Hour

func validateConfig(cfg Config) error {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return fmt.Errorf("secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}
	return nil
}

// GenerateToken generates a new JWT token with HS256 algorithm.
func (m *managerImpl) GenerateToken(userID, email, role string, groups []string) (string, error) {
	now := time.Now()

	claims := Claims{
		Email:  email,
		Role:   role,
		Groups: groups,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID,
			Audience:  m.audience,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifyToken verifies and parses a JWT token.
func (m *managerImpl) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid claims type")
	}

	return claims, nil
}

// SetConfig sets the issuer for generated tokens.
func (m *managerImpl) SetConfig(issuer string) {
	m.issuer = issuer
}

// Verify verifies an HS256 token and returns the scope payload.
func (m *managerImpl) Verify(token string) (scope.Payload, error) {
	claims, err := m.VerifyToken(token)
	if err != nil {
		return scope.Payload{}, err
	}

	return scope.Payload{
		Subject:  claims.Subject,
		UserID:   claims.Subject,
		Username: claims.Email,
		Role:     claims.Role,
	}, nil
}

// CreateToken creates a token from a scope payload.
func (m *managerImpl) CreateToken(payload scope.Payload) (string, error) {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}
	return m.GenerateToken(userID, payload.Username, payload.Role, nil)
}
