package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamwell/taskman/internal/domain"
)

func testPrincipal() Principal {
	return Principal{
		UserID: "00000000-0000-0000-0000-000000000001",
		Email:  "alice@example.com",
		Role:   domain.RoleUser,
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", 24*time.Hour)

	token, err := svc.Issue(testPrincipal())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", principal.UserID)
	assert.Equal(t, "alice@example.com", principal.Email)
	assert.Equal(t, domain.RoleUser, principal.Role)
}

func TestTokenService_Expired(t *testing.T) {
	// Negative TTL puts the expiry in the past at issuance.
	svc := NewTokenService("test-secret", -time.Hour)

	token, err := svc.Issue(testPrincipal())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", 24*time.Hour)
	verifier := NewTokenService("secret-two", 24*time.Hour)

	token, err := issuer.Issue(testPrincipal())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrTokenSignature)
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret", 24*time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "random string", token: "not.a.valid.token"},
		{name: "truncated jwt", token: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			require.ErrorIs(t, err, ErrTokenMalformed)
		})
	}
}

func TestTokenService_CarriesAdminRole(t *testing.T) {
	svc := NewTokenService("test-secret", 24*time.Hour)

	p := testPrincipal()
	p.Role = domain.RoleAdmin

	token, err := svc.Issue(p)
	require.NoError(t, err)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, got.Role)
}
