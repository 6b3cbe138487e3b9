package service

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-report-api/internal/models"
	appErrors "github.com/noah-isme/course-report-api/pkg/errors"
)

func TestAuthServiceIssueAndValidate(t *testing.T) {
	svc := NewAuthService(AuthConfig{AccessTokenSecret: "secret", Issuer: "course-report"})

	token, err := svc.IssueToken("user-1", models.RoleFinance, "fin@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleFinance, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestAuthServiceRejectsWrongSecret(t *testing.T) {
	issuer := NewAuthService(AuthConfig{AccessTokenSecret: "other"})
	token, err := issuer.IssueToken("user-1", models.RoleAdmin, "")
	require.NoError(t, err)

	_, err = NewAuthService(AuthConfig{AccessTokenSecret: "secret"}).ValidateToken(token)
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
}

func TestAuthServiceRejectsExpiredToken(t *testing.T) {
	svc := NewAuthService(AuthConfig{AccessTokenSecret: "secret", AccessTokenExpiry: time.Minute})
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := svc.IssueToken("user-1", models.RoleAdmin, "")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestAuthServiceRejectsForeignIssuer(t *testing.T) {
	token, err := NewAuthService(AuthConfig{AccessTokenSecret: "secret", Issuer: "elsewhere"}).IssueToken("user-1", models.RoleAdmin, "")
	require.NoError(t, err)

	_, err = NewAuthService(AuthConfig{AccessTokenSecret: "secret", Issuer: "course-report"}).ValidateToken(token)
	assert.Error(t, err)
}

func TestAuthServiceRejectsNoneAlgorithm(t *testing.T) {
	claims := models.JWTClaims{UserID: "user-1", Role: models.RoleAdmin}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewAuthService(AuthConfig{AccessTokenSecret: "secret"}).ValidateToken(token)
	assert.Error(t, err)
}
