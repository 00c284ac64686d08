package http

import (
	"context"
	"errors"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"

	"github.com/brokerdesk/brokerage-service/internal/api/dto"
	"github.com/brokerdesk/brokerage-service/internal/observability"
	apperrors "github.com/brokerdesk/brokerage-service/pkg/util"
)

// MiddlewareConfig carries the knobs for global middleware.
type MiddlewareConfig struct {
	Timeout        time.Duration
	AllowedOrigins string
}

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
// The request logger wraps the error middleware so it sees the final status.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, cfg MiddlewareConfig) {
	if cfg.Timeout > 0 {
		app.Use(requestTimeoutMiddleware(cfg.Timeout))
	}
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics))

	origins := cfg.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
}

// LoginRateLimiter throttles login attempts per client IP. A non-positive limit disables it.
func LoginRateLimiter(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return nil
	}
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "-login"
		},
		LimitReached: func(c *fiber.Ctx) error {
			return apperrors.NewTooManyRequests("Too many login attempts")
		},
	})
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				status, code, message := describeError(err)
				metrics.RecordError(c.Path(), c.Method(), code)
				if status >= 500 {
					logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
				}
				c.Status(status)
				_ = c.JSON(dto.ErrorResponse{Error: message})
				err = nil
			}
		}()
		return c.Next()
	}
}

// describeError maps fiber routing errors and domain errors to a response.
func describeError(err error) (int, string, string) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, "HTTP_" + strconv.Itoa(fiberErr.Code), fiberErr.Message
	}
	de := apperrors.ToDomainError(err)
	return de.HTTPStatus, de.Code, de.Message
}
