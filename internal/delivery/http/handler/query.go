package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"apilog-admin/internal/config"
	"apilog-admin/internal/domain/entity"
)

// parsePage reads limit and offset. Missing, malformed or non-positive
// limits fall back to the configured default; maxLimit caps it when set.
func parsePage(c *fiber.Ctx, cfg config.PaginationConfig) entity.Page {
	defaultLimit := cfg.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = entity.DefaultLimit
	}

	limit := defaultLimit
	if v, ok := queryInt(c, "limit"); ok && v > 0 {
		limit = v
	}
	if cfg.MaxLimit > 0 && limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}

	offset := entity.DefaultOffset
	if v, ok := queryInt(c, "offset"); ok && v >= 0 {
		offset = v
	}

	return entity.Page{Limit: limit, Offset: offset}
}

// parseLogFilter reads the optional filters. A routeId or status without a
// leading number, or equal to zero, leaves that filter off.
func parseLogFilter(c *fiber.Ctx) entity.LogFilter {
	var f entity.LogFilter

	if v, ok := queryInt(c, "routeId"); ok && v != 0 {
		id := int64(v)
		f.RouteID = &id
	}
	if v, ok := queryInt(c, "status"); ok && v != 0 {
		f.Status = &v
	}

	// passed to the store as sent
	f.IPAddress = c.Query("ipAddress")
	f.StartDate = c.Query("startDate")
	f.EndDate = c.Query("endDate")

	return f
}

// queryInt reads the leading base-10 integer of a query value, so "200abc"
// is 200 and "abc" is absent.
func queryInt(c *fiber.Ctx, key string) (int, bool) {
	raw := strings.TrimLeft(c.Query(key), " \t\r\n")

	end := 0
	if end < len(raw) && (raw[end] == '-' || raw[end] == '+') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	v, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}
