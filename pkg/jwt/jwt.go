package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry applies to login, activation and password reset tokens.
const TokenExpiry = time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Purpose is carried in the "purpose" claim. A token only validates for the
// purpose it was issued for.
type Purpose string

const (
	PurposeAccess     Purpose = "access"
	PurposeActivation Purpose = "activation"
	PurposeReset      Purpose = "reset"
)

type Manager struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret), expiry: TokenExpiry, now: time.Now}
}

func (m *Manager) GenerateToken(userID string, purpose Purpose) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"id":      userID,
		"purpose": string(purpose),
		"iat":     now.Unix(),
		"exp":     now.Add(m.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken returns the user id carried by tokenString if it was issued
// for purpose.
func (m *Manager) ValidateToken(tokenString string, purpose Purpose) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if p, _ := claims["purpose"].(string); p != string(purpose) {
		return "", fmt.Errorf("%w: issued for %q", ErrInvalidToken, p)
	}
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("%w: missing id claim", ErrInvalidToken)
	}
	return id, nil
}
