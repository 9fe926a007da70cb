package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		wantStatus int
	}{
		{name: "valid status", code: http.StatusNotFound, wantStatus: http.StatusNotFound},
		{name: "business code", code: 110004, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewHTTPError(tt.code, "msg")
			assert.Equal(t, tt.wantStatus, e.StatusCode)
			assert.Equal(t, "msg", e.Error())
		})
	}
}

func TestValidationError(t *testing.T) {
	var nilErr *ValidationError
	assert.False(t, nilErr.HasErrors())

	e := NewValidationError()
	assert.False(t, e.HasErrors())
	e.Add("page", "must be at least 1")
	e.Add("limit", "must be at least 1")
	assert.True(t, e.HasErrors())
	assert.Equal(t, "validation failed: page: must be at least 1; limit: must be at least 1", e.Error())
}
