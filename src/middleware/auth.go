package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/models"
	"github.com/golang-jwt/jwt/v5"
)

// OperatorTokens issues and checks the signed tokens handed out after a
// successful role password check.
type OperatorTokens struct {
	secret []byte
	ttl    time.Duration
}

// NewOperatorTokens returns nil when no secret is configured
func NewOperatorTokens(secret string, ttl time.Duration) *OperatorTokens {
	if strings.TrimSpace(secret) == "" {
		return nil
	}
	return &OperatorTokens{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for role
func (t *OperatorTokens) Issue(role string) (string, error) {
	if t == nil {
		return "", errors.New("operator tokens are not configured")
	}
	claims := jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(t.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify accepts unexpired operator tokens only
func (t *OperatorTokens) Verify(tokenString string) bool {
	if t == nil || tokenString == "" {
		return false
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return false
	}

	role, _ := claims["role"].(string)
	return role == models.RoleOperator
}
