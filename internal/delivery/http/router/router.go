package router

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"apilog-admin/internal/config"
	"apilog-admin/internal/delivery/http/handler"
	"apilog-admin/internal/domain/apperror"
	"apilog-admin/internal/domain/entity"
	"apilog-admin/internal/infrastructure/redis"
)

var _ fiber.Storage = (*redis.LimiterStorage)(nil)

type Router struct {
	app           *fiber.App
	config        *config.Config
	healthHandler *handler.HealthHandler
	logHandler    *handler.LogHandler
	redisClient   *redis.RedisClient
	logger        *zap.Logger
}

// NewRouter builds the fiber app. redisClient may be nil.
func NewRouter(
	cfg *config.Config,
	healthHandler *handler.HealthHandler,
	logHandler *handler.LogHandler,
	redisClient *redis.RedisClient,
	logger *zap.Logger,
) *Router {
	r := &Router{
		config:        cfg,
		healthHandler: healthHandler,
		logHandler:    logHandler,
		redisClient:   redisClient,
		logger:        logger,
	}

	r.app = fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		ErrorHandler:          r.errorHandler,
		DisableStartupMessage: cfg.IsProduction(),
	})

	return r
}

func (r *Router) Setup() *fiber.App {
	// Middleware
	r.app.Use(recover.New())
	r.app.Use(requestid.New())
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	if r.config.IsDevelopment() {
		r.app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	// Health check route
	r.app.Get("/health", r.healthHandler.Health)

	// TODO(auth): put an admin authentication middleware on this group
	// before exposing it outside the internal network.
	logs := r.app.Group(r.config.App.BasePath + "/logs")
	if r.config.RateLimit.Enabled {
		logs.Use(r.rateLimiter())
	}
	{
		logs.Get("", r.logHandler.GetLogs)
		logs.Get("/routes", r.logHandler.GetRoutes)
		logs.Get("/route/:id", r.logHandler.GetRouteLogs)

		if r.config.App.EnableViewer {
			logs.Get("/viewer", r.logHandler.LogViewer)
		}
	}

	return r.app
}

func (r *Router) GetApp() *fiber.App {
	return r.app
}

// rateLimiter counts in redis when a client is configured, in memory otherwise
func (r *Router) rateLimiter() fiber.Handler {
	cfg := limiter.Config{
		Max:        r.config.RateLimit.Max,
		Expiration: r.config.RateLimit.WindowDuration(),
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.ErrTooManyRequests
		},
	}

	storage := "memory"
	if r.redisClient != nil {
		cfg.Storage = redis.NewLimiterStorage(r.redisClient)
		storage = "redis"
	}

	r.logger.Info("Rate limiting enabled",
		zap.Int("max", cfg.Max),
		zap.Duration("window", cfg.Expiration),
		zap.String("storage", storage),
	)

	return limiter.New(cfg)
}

// errorHandler renders every error in the response envelope. Errors that
// already carry a status keep it; classified errors map by kind.
func (r *Router) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	kind := string(apperror.KindInternal)
	message := "server error: " + err.Error()

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		kind = statusKind(code)
		message = fiberErr.Message
	} else {
		switch apperror.KindOf(err) {
		case apperror.KindInvalidArgument:
			code, kind, message = fiber.StatusBadRequest, string(apperror.KindInvalidArgument), err.Error()
		case apperror.KindNotFound:
			code, kind, message = fiber.StatusNotFound, string(apperror.KindNotFound), err.Error()
		case apperror.KindStorage:
			kind, message = string(apperror.KindStorage), err.Error()
		}
	}

	if code >= fiber.StatusInternalServerError {
		r.logger.Error("Request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)
	}

	return c.Status(code).JSON(entity.NewErrorResponse(code, kind, message))
}

// statusKind turns a status code into a kind such as "TOO_MANY_REQUESTS"
func statusKind(code int) string {
	return strings.ToUpper(strings.ReplaceAll(utils.StatusMessage(code), " ", "_"))
}
