package handling_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/handling"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
)

func TestHandleErrorWritesServerError(t *testing.T) {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))
	rec := httptest.NewRecorder()

	handling.HandleError(errors.New("boom"), "Failed to list posts", logger, rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
