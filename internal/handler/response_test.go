package handler

import (
	"errors"
	"fmt"
	"testing"

	"go-gudang-api/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestStatusForMapsSentinels(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", service.ErrNotFound, 404},
		{"conflict", service.ErrConflict, 409},
		{"unauthorized", service.ErrUnauthorized, 401},
		{"validation", service.ErrValidation, 400},
		{"wrapped validation", fmt.Errorf("%w: field 'NamaProduk' pada tag 'required'", service.ErrValidation), 400},
		{"insufficient stock", service.ErrStokKurang, 400},
		{"no photo", service.ErrNoFoto, 400},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusFor(tc.err))
		})
	}
}

// A driver failure carries no sentinel and must surface as a server error,
// not as a client mistake.
func TestStatusForUnknownErrorIs500(t *testing.T) {
	assert.Equal(t, 500, statusFor(errors.New("driver: bad connection")))
}
