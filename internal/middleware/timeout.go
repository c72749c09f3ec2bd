package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// OperationTimeout attaches a deadline to the request context. The backing
// store offers no cancellation of in-flight writes, so the deadline bounds how
// long a caller waits for a result; expiry surfaces as a TIMEOUT error from
// the service layer.
func OperationTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
