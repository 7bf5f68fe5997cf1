package pkgerror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	biz := NewBusiness("invalid passengers", CodeInvalidInput)
	wrapped := fmt.Errorf("parse: %w", biz)

	got := From(wrapped)
	assert.Same(t, biz, got)
	assert.Equal(t, http.StatusBadRequest, got.Code().StatusCode())
	assert.Equal(t, "invalid passengers", got.Msg())

	cause := errors.New("all providers failed")
	server := From(cause)
	assert.Equal(t, CodeInternal, server.Code())
	assert.Equal(t, http.StatusInternalServerError, server.Code().StatusCode())
	assert.Equal(t, "internal server error", server.Msg())
	assert.ErrorIs(t, server, cause)
	assert.Equal(t, "internal server error: all providers failed", server.Error())
}

func TestCode_StatusCode(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInternal, http.StatusInternalServerError},
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{CodeUnavailable, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.StatusCode())
	}
}
