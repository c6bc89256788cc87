package lib_test

import (
	"encoding/base64"
	"strconv"
	"testing"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLoginCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := lib.GenerateLoginCode()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestGenerateRandomToken(t *testing.T) {
	token, err := lib.GenerateRandomToken()
	require.NoError(t, err)

	raw, err := base64.URLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	other, err := lib.GenerateRandomToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
