package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/yakoovad/workload-planner/internal/model"
)

type TokenClaims struct {
	PersonID       string     `json:"pid"`
	OrganizationID string     `json:"org"`
	Role           model.Role `json:"role"`
	jwt.RegisteredClaims
}

// Session identifies the caller of a request.
type Session struct {
	PersonID       string
	OrganizationID string
	Role           model.Role
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

func (m *TokenManager) GenerateToken(s Session) (string, error) {
	now := m.now()
	claims := TokenClaims{
		PersonID:       s.PersonID,
		OrganizationID: s.OrganizationID,
		Role:           s.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.PersonID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) VerifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			alg, _ := token.Header["alg"].(string)
			return nil, errors.Wrap(ErrInvalidSigningMethod, alg)
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*TokenClaims); ok && token.Valid && claims.PersonID != "" {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// SessionFromToken returns the session in a valid token.
func (m *TokenManager) SessionFromToken(tokenString string) (*Session, bool) {
	claims, err := m.VerifyToken(tokenString)
	if err != nil {
		return nil, false
	}
	return &Session{
		PersonID:       claims.PersonID,
		OrganizationID: claims.OrganizationID,
		Role:           claims.Role,
	}, true
}

func (s *Session) HasRole(roles ...model.Role) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}
