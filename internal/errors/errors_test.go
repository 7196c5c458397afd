package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"email taken", ErrEmailTaken, http.StatusBadRequest},
		{"not found", ErrSellNotFound, http.StatusNotFound},
		{"invalid reset token", ErrInvalidResetToken, http.StatusNotFound},
		{"bad old password", ErrBadOldPassword, http.StatusBadRequest},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"mail delivery", ErrMailDelivery, http.StatusInternalServerError},
		{"image upload", ErrImageUpload, http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("context: %w", ErrSellNotFound), http.StatusNotFound},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Map(tt.err)
			assert.Equal(t, tt.status, got.StatusCode)
		})
	}
}

func TestMap_UnknownErrorHidesMessage(t *testing.T) {
	got := Map(fmt.Errorf("mongo exploded at 10.0.0.3"))
	assert.Equal(t, "internal server error", got.Message)
}
