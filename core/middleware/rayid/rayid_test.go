package rayid

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(seen *string) *fiber.App {
	app := fiber.New()
	app.Use(New())
	app.Get("/", func(c *fiber.Ctx) error {
		*seen, _ = c.Locals(LocalsKey).(string)
		return c.SendString("ok")
	})
	return app
}

func TestRayID_Generated(t *testing.T) {
	var seen string
	app := setupApp(&seen)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	header := resp.Header.Get(HeaderName)
	_, err = uuid.Parse(header)
	assert.NoError(t, err)
	assert.Equal(t, header, seen)
}

func TestRayID_Propagated(t *testing.T) {
	var seen string
	app := setupApp(&seen)
	id := uuid.NewString()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderName, id)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, id, resp.Header.Get(HeaderName))
	assert.Equal(t, id, seen)
}

func TestRayID_InvalidIncomingReplaced(t *testing.T) {
	var seen string
	app := setupApp(&seen)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderName, "not-a-uuid")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.NotEqual(t, "not-a-uuid", resp.Header.Get(HeaderName))
	_, err = uuid.Parse(seen)
	assert.NoError(t, err)
}
