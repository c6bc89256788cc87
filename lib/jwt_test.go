package lib_test

import (
	"testing"
	"time"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-do-not-use"

func testClaims(exp time.Time) *structs.AuthClaims {
	return &structs.AuthClaims{
		Sub:   uuid.New(),
		Email: "bethuel@thipe.dev",
		Role:  "user",
		Iat:   time.Now().Add(-time.Minute),
		Exp:   exp,
		Jti:   uuid.New(),
	}
}

func TestSignAndParseToken(t *testing.T) {
	claims := testClaims(time.Now().Add(15 * time.Minute))

	token, err := lib.SignClaims(claims, testSecret)
	require.NoError(t, err)

	parsed, err := lib.ParseToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, claims.Sub, parsed.Sub)
	assert.Equal(t, claims.Email, parsed.Email)
	assert.Equal(t, claims.Role, parsed.Role)
	assert.Equal(t, claims.Jti, parsed.Jti)
	assert.WithinDuration(t, claims.Exp, parsed.Exp, time.Second)
}

func TestParseTokenWrongSecret(t *testing.T) {
	claims := testClaims(time.Now().Add(15 * time.Minute))

	token, err := lib.SignClaims(claims, testSecret)
	require.NoError(t, err)

	_, err = lib.ParseToken(token, "a-different-secret")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	claims := testClaims(time.Now().Add(-time.Minute))

	token, err := lib.SignClaims(claims, testSecret)
	require.NoError(t, err)

	_, err = lib.ParseToken(token, testSecret)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := lib.ParseToken("not.a.token", testSecret)
	assert.Error(t, err)
}
