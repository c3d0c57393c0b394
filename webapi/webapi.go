// Package webapi provides the HTTP boundary for the account backend.
// It is organized into sub-packages per area:
//   - account: account lifecycle endpoints
//   - transaction: balance use/cancel/query endpoints
//   - common: shared response shaping and request binding
package webapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/harubank/account/pkg/app"
	"github.com/harubank/account/pkg/domain"
	accountweb "github.com/harubank/account/webapi/account"
	"github.com/harubank/account/webapi/common"
	transactionweb "github.com/harubank/account/webapi/transaction"
)

// SetupApp initializes Fiber with middleware and routes.
func SetupApp(application *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Router-level errors (404, 405, body too large) keep their own
			// status and message; only genuine failures render as
			// INTERNAL_SERVER_ERROR.
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) && fiberErr.Code != fiber.StatusInternalServerError {
				return common.ErrorResponseJSON(c, fiberErr.Code,
					utils.StatusMessage(fiberErr.Code), fiberErr.Message)
			}
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError,
				string(domain.CodeInternalServerError),
				domain.CodeInternalServerError.Description())
		},
	})

	// Rate limiting keyed by client IP, honoring proxy headers.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        application.Config.RateLimit.MaxRequests,
		Expiration: application.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests,
				"RATE_LIMIT_EXCEEDED", "rate limit exceeded")
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	accountweb.Routes(fiberApp, application.AccountService)
	transactionweb.Routes(fiberApp, application.TransactionService)

	return fiberApp
}
