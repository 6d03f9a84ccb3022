package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tienda/internal/services"
)

// Tokens below were produced by the reference derivation
// (SHA-256 then 16-byte BLAKE2b, lowercase hex). The function must stay
// byte-for-byte compatible with tokens already stored.
func TestPasswordTokenKnownValues(t *testing.T) {
	cases := map[string]string{
		"password123": "b754341b32b7b6beab1c2fd45d9cccd5",
		"longenough1": "a01143531e66df2411baf28d373990a5",
		"hunter22":    "4321711742ad9719b878ee1c2acd9482",
		"secretpass":  "5b808681dc257ff090b0edd149011f51",
	}
	for password, want := range cases {
		assert.Equal(t, want, services.PasswordToken(password))
	}
}

func TestPasswordTokenDeterministic(t *testing.T) {
	assert.Equal(t, services.PasswordToken("some password"), services.PasswordToken("some password"))
	assert.NotEqual(t, services.PasswordToken("some password"), services.PasswordToken("some password!"))
}

func TestPasswordTokenShape(t *testing.T) {
	token := services.PasswordToken("anything at all")
	assert.Regexp(t, "^[0-9a-f]{32}$", token, "16-byte digest rendered as lowercase hex")
}
