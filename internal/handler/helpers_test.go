package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// withFacultyLocals mimics the JWT middleware binding the authenticated
// faculty onto the request.
func withFacultyLocals(app *fiber.App, facultyID, email string) {
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("faculty_id", facultyID)
		c.Locals("faculty_email", email)
		return c.Next()
	})
}

func performRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}
