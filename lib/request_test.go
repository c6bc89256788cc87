package lib_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleBody struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2"`
}

func TestExtractAndValidateBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.dev","name":"Bethuel"}`))

	body, err := lib.ExtractAndValidateBody[sampleBody](r)
	require.NoError(t, err)
	assert.Equal(t, "a@b.dev", body.Email)
	assert.Equal(t, "Bethuel", body.Name)
}

func TestExtractAndValidateBodyInvalidEmail(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"not-an-email","name":"Bethuel"}`))

	_, err := lib.ExtractAndValidateBody[sampleBody](r)
	require.Error(t, err)

	var ve *lib.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "email", ve.Errors[0].Field)
	assert.Equal(t, "must be a valid email address", ve.Errors[0].Message)
}

func TestExtractAndValidateBodyUnknownField(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.dev","name":"Bethuel","extra":true}`))

	_, err := lib.ExtractAndValidateBody[sampleBody](r)
	assert.Error(t, err)
}

func TestExtractAndValidateBodyMalformedJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":`))

	_, err := lib.ExtractAndValidateBody[sampleBody](r)
	assert.Error(t, err)
}
