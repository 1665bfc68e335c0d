package http

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/belleza-api/internal/domain"
)

func TestRespondError_MapeoDeErroresDeDominio(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: calificación", domain.ErrInvalidInput), fiber.StatusBadRequest},
		{domain.ErrUnauthorized, fiber.StatusUnauthorized},
		{domain.ErrInactiveUser, fiber.StatusForbidden},
		{fmt.Errorf("%w: no es tuyo", domain.ErrForbidden), fiber.StatusForbidden},
		{fmt.Errorf("%w: spa x", domain.ErrNotFound), fiber.StatusNotFound},
		{domain.ErrUserNotFound, fiber.StatusNotFound},
		{domain.ErrEmailAlreadyExists, fiber.StatusConflict},
		{fmt.Errorf("%w: nombre", domain.ErrDuplicate), fiber.StatusConflict},
		{fmt.Errorf("%w: ya activo", domain.ErrConflict), fiber.StatusConflict},
		{errors.New("conexión caída"), fiber.StatusInternalServerError},
	}
	for _, c := range cases {
		app := fiber.New()
		app.Get("/", func(ctx *fiber.Ctx) error { return respondError(ctx, c.err) })

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, c.status, resp.StatusCode, c.err.Error())
	}
}

func TestBearerToken(t *testing.T) {
	tok, ok := bearerToken("Bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	tok, ok = bearerToken("bearer  xyz ")
	assert.True(t, ok)
	assert.Equal(t, "xyz", tok)

	_, ok = bearerToken("Basic abc")
	assert.False(t, ok)
	_, ok = bearerToken("Bearer ")
	assert.False(t, ok)
}
