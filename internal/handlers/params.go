package handlers

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// pathParam returns a URL path parameter with percent-escapes decoded, so
// movie titles containing spaces round-trip through the URL.
func pathParam(c *fiber.Ctx, name string) (string, error) {
	raw := c.Params(name)
	if raw == "" {
		return "", fmt.Errorf("missing %s parameter", name)
	}
	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("malformed %s parameter", name)
	}
	return value, nil
}
