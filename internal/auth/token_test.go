package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yakoovad/workload-planner/internal/model"
)

const testSecretKey = "test-secret-key-for-predictable-results"

var testSession = Session{PersonID: "p1", OrganizationID: "org1", Role: model.RoleMember}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name     string
		session  Session
		duration time.Duration
	}{
		{
			name:     "success: generate valid member token",
			session:  testSession,
			duration: time.Hour,
		},
		{
			name:     "success: generate valid admin token",
			session:  Session{PersonID: "p2", OrganizationID: "org1", Role: model.RoleAdmin},
			duration: 30 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewTokenManager(testSecretKey, tt.duration)

			tokenString, err := m.GenerateToken(tt.session)
			require.NoError(t, err)
			require.NotEmpty(t, tokenString)

			claims, err := m.VerifyToken(tokenString)
			require.NoError(t, err)
			assert.Equal(t, tt.session.Role, claims.Role)
			assert.Equal(t, tt.session.PersonID, claims.PersonID)
			assert.Equal(t, tt.session.OrganizationID, claims.OrganizationID)
			assert.WithinDuration(t, time.Now().Add(tt.duration), claims.ExpiresAt.Time, time.Second*5)
		})
	}
}

func TestVerifyToken(t *testing.T) {
	m := NewTokenManager(testSecretKey, time.Hour)
	validToken, _ := m.GenerateToken(testSession)

	expired := NewTokenManager(testSecretKey, -time.Hour)
	expiredToken, _ := expired.GenerateToken(testSession)

	other := NewTokenManager("different-secret-key", time.Hour)

	claimsWithWrongMethod := TokenClaims{
		PersonID: "p1",
		Role:     model.RoleMember,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tokenWithWrongMethod := jwt.NewWithClaims(jwt.SigningMethodNone, claimsWithWrongMethod)
	wrongMethodTokenString, _ := tokenWithWrongMethod.SignedString(jwt.UnsafeAllowNoneSignatureType)

	noSubject, _ := m.GenerateToken(Session{OrganizationID: "org1", Role: model.RoleAdmin})

	tests := []struct {
		name              string
		manager           *TokenManager
		tokenString       string
		expectError       bool
		expectedErrorType error
	}{
		{
			name:        "success: verify valid token",
			manager:     m,
			tokenString: validToken,
		},
		{
			name:              "failure: verify expired token",
			manager:           m,
			tokenString:       expiredToken,
			expectError:       true,
			expectedErrorType: jwt.ErrTokenExpired,
		},
		{
			name:              "failure: verify token with invalid signature",
			manager:           other,
			tokenString:       validToken,
			expectError:       true,
			expectedErrorType: jwt.ErrTokenSignatureInvalid,
		},
		{
			name:              "failure: verify malformed token",
			manager:           m,
			tokenString:       "not-a-valid-jwt-token",
			expectError:       true,
			expectedErrorType: jwt.ErrTokenMalformed,
		},
		{
			name:              "failure: verify token with wrong signing method",
			manager:           m,
			tokenString:       wrongMethodTokenString,
			expectError:       true,
			expectedErrorType: ErrInvalidSigningMethod,
		},
		{
			name:              "failure: token without person",
			manager:           m,
			tokenString:       noSubject,
			expectError:       true,
			expectedErrorType: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tt.manager.VerifyToken(tt.tokenString)

			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErrorType)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, claims)
				assert.Equal(t, testSession.PersonID, claims.PersonID)
			}
		})
	}
}

func TestSessionFromToken(t *testing.T) {
	m := NewTokenManager(testSecretKey, time.Hour)
	validToken, _ := m.GenerateToken(testSession)

	session, ok := m.SessionFromToken(validToken)
	require.True(t, ok)
	assert.Equal(t, testSession, *session)
	assert.True(t, session.HasRole(model.RoleMember, model.RoleAdmin))
	assert.False(t, session.HasRole(model.RoleAdmin))

	_, ok = m.SessionFromToken("invalid-token")
	assert.False(t, ok)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, CheckPassword(hash, "correct horse"))
	assert.ErrorIs(t, CheckPassword(hash, "battery staple"), ErrPasswordMismatch)
	assert.Error(t, CheckPassword("not-a-hash", "correct horse"))
}
