package lib_test

import (
	"testing"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	userCtx := lib.PasswordContext{
		Username:  "bethuel",
		Email:     "bethuel@thipe.dev",
		FirstName: "Bethuel",
		LastName:  "Thipe",
	}

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{
			name:     "valid password",
			password: "Correct-Horse-Battery",
			wantErr:  nil,
		},
		{
			name:     "too short",
			password: "abc1234",
			wantErr:  lib.ErrPasswordTooShort,
		},
		{
			name:     "entirely numeric",
			password: "48293756",
			wantErr:  lib.ErrPasswordNumeric,
		},
		{
			name:     "too common",
			password: "password123",
			wantErr:  lib.ErrPasswordTooCommon,
		},
		{
			name:     "common password uppercased",
			password: "PASSW0RD",
			wantErr:  lib.ErrPasswordTooCommon,
		},
		{
			name:     "contains username",
			password: "xxbethuelxx",
			wantErr:  lib.ErrPasswordTooSimilar,
		},
		{
			name:     "contains last name",
			password: "mr-thipe-2024",
			wantErr:  lib.ErrPasswordTooSimilar,
		},
		{
			name:     "contains first name",
			password: "Bethuel1",
			wantErr:  lib.ErrPasswordTooSimilar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := lib.ValidatePassword(tt.password, userCtx)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNotSimilarPolicySkipsShortAttributes(t *testing.T) {
	userCtx := lib.PasswordContext{Username: "al", Email: "al@example.com"}

	// "al" is below the similarity threshold, so a password containing it passes
	err := lib.ValidatePassword("walrus-fountain", userCtx)
	assert.NoError(t, err)
}
