package auth

import (
	"testing"

	"godiya-emr-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateKnownAccounts(t *testing.T) {
	for _, cred := range Credentials() {
		got, ok := Authenticate(cred.Email, "12345678")
		require.True(t, ok, "login should succeed for %s", cred.Email)
		assert.Equal(t, cred.Role, got.Role)
		assert.Equal(t, cred.Name, got.Name)
	}
}

func TestAuthenticateRejects(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "doctor@godiyahospital.ng", "wrongpass"},
		{"unknown email", "nobody@godiyahospital.ng", "12345678"},
		{"empty email", "", "12345678"},
		{"empty password", "doctor@godiyahospital.ng", ""},
		{"uppercased email", "DOCTOR@godiyahospital.ng", "12345678"},
		{"email with surrounding space", " doctor@godiyahospital.ng ", "12345678"},
		{"email prefix only", "doctor", "12345678"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Authenticate(tc.email, tc.password)
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	secret := "test-secret-at-least-32-characters!!"
	cred := &Credential{
		Email: "doctor@godiyahospital.ng",
		Role:  models.RoleDoctor,
		Name:  "Dr. Amina Bello",
	}

	signed, err := GenerateToken(secret, cred)
	require.NoError(t, err)

	claims := &JWTCustomClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)

	session := claims.Session()
	assert.Equal(t, cred.Email, session.Email)
	assert.Equal(t, models.RoleDoctor, session.Role)
	assert.Equal(t, cred.Name, session.Name)
	assert.False(t, session.Timestamp.IsZero())
}

func TestGenerateTokenWrongSecretFails(t *testing.T) {
	signed, err := GenerateToken("test-secret-at-least-32-characters!!", &Credential{
		Email: "nurse@godiyahospital.ng",
		Role:  models.RoleNurse,
	})
	require.NoError(t, err)

	claims := &JWTCustomClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("a-different-secret-that-is-also-long"), nil
	})
	assert.Error(t, err)
}
