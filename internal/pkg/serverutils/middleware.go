package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"chat-history-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware recovers panics and converts handler errors into
// a plain JSON envelope so no request dies with an empty body.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("http", "panic recovered", map[string]interface{}{
					"path":   c.Path(),
					"method": c.Method(),
					"panic":  fmt.Sprintf("%v", r),
				})
				err = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "internal server error",
				})
			}
		}()

		if err := c.Next(); err != nil {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			log.Error("http", "request failed", map[string]interface{}{
				"path":   c.Path(),
				"method": c.Method(),
				"status": code,
				"error":  err.Error(),
			})
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return nil
	}
}
