package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindSurvivesWrapping(t *testing.T) {
	base := NotFound("quote not found")
	wrapped := fmt.Errorf("lookup: %w", base)

	var e *Error
	require.True(t, errors.As(wrapped, &e))
	assert.Equal(t, KindNotFound, e.Kind)
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestKindOfUnclassified(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	e := Internal("failed to generate PDF", cause)

	assert.ErrorIs(t, e, cause)
	assert.Contains(t, e.Error(), "refused")
	assert.Equal(t, "failed to generate PDF", e.Message)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindInvalidArgument))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(KindNotFound))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindDataLoss))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindInternal))
}
