package app

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"railroute/pkg/config"
	"railroute/pkg/ledger"
	"railroute/pkg/rail"
	executionsvc "railroute/pkg/service/execution"
	routingsvc "railroute/pkg/service/routing"
	"railroute/webapi/common"
	executionapi "railroute/webapi/execution"
	routingapi "railroute/webapi/routing"
)

// ServiceName is reported by the liveness probe.
const ServiceName = "railroute"

// Deps carries everything the app needs to serve requests. The catalog
// and ledger are owned by the caller and injected, not package globals.
// Authorize is the pluggable shared-secret predicate; nil means the
// service runs without authentication.
type Deps struct {
	Config    *config.App
	Logger    *slog.Logger
	Catalog   *rail.Catalog
	Ledger    *ledger.Ledger
	Authorize func(key string) bool
}

// KeyAuthorizer builds an Authorize predicate that accepts exactly the
// configured shared secret. Returns nil when no key is configured, which
// disables authentication entirely.
func KeyAuthorizer(apiKey string) func(string) bool {
	if apiKey == "" {
		return nil
	}
	return func(key string) bool { return key == apiKey }
}

// New builds all services and returns the Fiber app.
func New(deps Deps) *fiber.App {
	routingSvc := routingsvc.NewService(deps.Catalog, deps.Logger)
	executionSvc := executionsvc.NewService(deps.Ledger, deps.Logger)

	app := fiber.New(fiber.Config{
		AppName: ServiceName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorJSON(c, status, err.Error())
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}
		deps.Logger.Info("request completed",
			"request_id", c.Locals("requestid"),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
		)
		return err
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: deps.Config.Cors.Origins,
		AllowHeaders: "Origin, Content-Type, Accept, " + deps.Config.Auth.Header,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        deps.Config.RateLimit.MaxRequests,
		Expiration: deps.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			// Use X-Forwarded-For header if available (for load balancers/proxies)
			// Fall back to X-Real-IP, then to direct IP
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
			return common.ErrorJSON(c, fiber.StatusTooManyRequests, "rate limit exceeded")
		},
	}))

	if deps.Authorize != nil {
		app.Use(keyauth.New(keyauth.Config{
			KeyLookup: "header:" + deps.Config.Auth.Header,
			Next: func(c *fiber.Ctx) bool {
				// The liveness probe stays open so orchestrators can hit it
				// without credentials.
				return c.Path() == "/"
			},
			Validator: func(c *fiber.Ctx, key string) (bool, error) {
				if deps.Authorize(key) {
					return true, nil
				}
				return false, keyauth.ErrMissingOrMalformedAPIKey
			},
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				return common.ErrorJSON(c, fiber.StatusUnauthorized, "invalid or missing API key")
			},
		}))
	} else {
		deps.Logger.Warn("no API key configured, running without authentication")
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": ServiceName})
	})

	routingapi.Routes(app, routingSvc)
	executionapi.Routes(app, executionSvc)
	return app
}
