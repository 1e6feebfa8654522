package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"apilog-admin/internal/domain/entity"
	"apilog-admin/internal/infrastructure/database"
	"apilog-admin/internal/version"
)

type HealthHandler struct {
	db     *database.Database
	logger *zap.Logger
}

func NewHealthHandler(db *database.Database, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// Health godoc
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} entity.APIResponse
// @Failure 503 {object} entity.APIResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if err := h.db.Ping(c.UserContext()); err != nil {
		h.logger.Warn("Health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(
			entity.NewErrorResponse(fiber.StatusServiceUnavailable, "UNAVAILABLE", "database unreachable"),
		)
	}

	return c.JSON(entity.NewSuccessResponse(HealthResponse{
		Status:    "healthy",
		Database:  h.db.Driver,
		Timestamp: time.Now(),
		Version:   version.Version,
	}, "Service is healthy"))
}
