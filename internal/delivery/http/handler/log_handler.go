package handler

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"apilog-admin/internal/config"
	"apilog-admin/internal/domain/entity"
	"apilog-admin/internal/usecase"
)

//go:embed viewer.html
var viewerHTML string

var viewerTemplate = template.Must(template.New("viewer").Parse(viewerHTML))

type LogHandler struct {
	usecase    usecase.LogUsecase
	pagination config.PaginationConfig
	viewer     []byte
	logger     *zap.Logger
}

func NewLogHandler(uc usecase.LogUsecase, cfg *config.Config, logger *zap.Logger) (*LogHandler, error) {
	var buf bytes.Buffer
	err := viewerTemplate.Execute(&buf, struct {
		Title    string
		BasePath string
	}{
		Title:    cfg.App.Name,
		BasePath: cfg.App.BasePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render log viewer: %w", err)
	}

	return &LogHandler{
		usecase:    uc,
		pagination: cfg.Pagination,
		viewer:     buf.Bytes(),
		logger:     logger,
	}, nil
}

// GetLogs godoc
// @Summary List API logs
// @Description Filtered, paginated listing of API logs, newest first
// @Tags logs
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Rows to skip" default(0)
// @Param routeId query int false "Route id"
// @Param status query int false "Response status"
// @Param ipAddress query string false "IP address substring"
// @Param startDate query string false "Lower created_at bound, inclusive"
// @Param endDate query string false "Upper created_at bound, inclusive"
// @Success 200 {object} entity.LogListResponse
// @Failure 500 {object} entity.APIResponse
// @Router /logs [get]
func (h *LogHandler) GetLogs(c *fiber.Ctx) error {
	filter := parseLogFilter(c)
	page := parsePage(c, h.pagination)

	result, err := h.usecase.ListLogs(c.UserContext(), filter, page)
	if err != nil {
		return err
	}

	return c.JSON(entity.NewLogListResponse(result))
}

// GetRouteLogs godoc
// @Summary List logs of one route
// @Tags logs
// @Produce json
// @Param id path int true "Route id"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} entity.LogListResponse
// @Failure 400 {object} entity.APIResponse
// @Failure 404 {object} entity.APIResponse
// @Failure 500 {object} entity.APIResponse
// @Router /logs/route/{id} [get]
func (h *LogHandler) GetRouteLogs(c *fiber.Ctx) error {
	routeID, err := entity.ParseRouteID(c.Params("id"))
	if err != nil {
		return err
	}

	result, err := h.usecase.ListRouteLogs(c.UserContext(), routeID, parsePage(c, h.pagination))
	if err != nil {
		return err
	}

	return c.JSON(entity.NewLogListResponse(result))
}

// GetRoutes godoc
// @Summary List API routes
// @Description All known routes sorted by name, for filter dropdowns
// @Tags logs
// @Produce json
// @Success 200 {object} entity.RouteListResponse
// @Failure 500 {object} entity.APIResponse
// @Router /logs/routes [get]
func (h *LogHandler) GetRoutes(c *fiber.Ctx) error {
	routes, err := h.usecase.ListRoutes(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(entity.NewRouteListResponse(routes))
}

// LogViewer serves the HTML page for browsing logs
func (h *LogHandler) LogViewer(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(h.viewer)
}
