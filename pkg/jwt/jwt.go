package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the authenticated admin identity inside the bearer token.
type Claims struct {
	AdminID  uint   `json:"adminID"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs and validates bearer tokens with a single HS256 secret.
type Manager struct {
	secret []byte
	expiry time.Duration
	issuer string
}

func NewManager(secret string, expiry time.Duration, issuer string) *Manager {
	if expiry <= 0 {
		expiry = 2 * time.Hour
	}
	return &Manager{secret: []byte(secret), expiry: expiry, issuer: issuer}
}

// Generate creates a signed token for an admin.
func (m *Manager) Generate(adminID uint, username string) (string, error) {
	claims := &Claims{
		AdminID:  adminID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    m.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses a token string and returns its claims when valid.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
