package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http/httptest"
	"testing"

	"quizbuilder/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerHidesInternalErrors(t *testing.T) {
	var buf bytes.Buffer
	errApp := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(log.New(&buf, "", 0))})
	errApp.Get("/db", func(c *fiber.Ctx) error { return errors.New("connection refused") })
	errApp.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })

	resp, err := errApp.Test(httptest.NewRequest("GET", "/db", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Internal server error", body.Message)
	assert.Contains(t, buf.String(), "connection refused")

	resp, err = errApp.Test(httptest.NewRequest("GET", "/teapot", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "short and stout", body.Message)

	resp, err = errApp.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
