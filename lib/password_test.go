package lib_test

import (
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeArgon2(salt, hash []byte) string {
	return fmt.Sprintf("$argon2id$v=19$m=65536,t=1,p=4$%s$%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
}

func TestDecodeArgon2Hash(t *testing.T) {
	salt := []byte("0123456789abcdef")
	hash := []byte("fedcba9876543210fedcba9876543210")

	parts, err := lib.DecodeArgon2Hash(encodeArgon2(salt, hash))
	require.NoError(t, err)

	assert.Equal(t, uint32(65536), parts.Memory)
	assert.Equal(t, uint32(1), parts.Time)
	assert.Equal(t, uint8(4), parts.Threads)
	assert.Equal(t, uint32(len(hash)), parts.KeyLen)
	assert.Equal(t, salt, parts.Salt)
	assert.Equal(t, hash, parts.Hash)
}

func TestDecodeArgon2HashRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"wrong segment count", "$argon2id$v=19$m=65536,t=1,p=4$salt"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lib.DecodeArgon2Hash(tt.encoded)
			assert.Error(t, err)
		})
	}
}

func TestDecodeArgon2HashRejectsWrongVersion(t *testing.T) {
	encoded := "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA"
	_, err := lib.DecodeArgon2Hash(encoded)
	assert.ErrorIs(t, err, lib.ErrIncompatibleVersion)
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, lib.SecureCompare([]byte("same"), []byte("same")))
	assert.False(t, lib.SecureCompare([]byte("same"), []byte("diff")))
	assert.False(t, lib.SecureCompare([]byte("same"), []byte("samee")))
}
