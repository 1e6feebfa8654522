package entity

import (
	"strconv"
	"strings"

	"apilog-admin/internal/domain/apperror"
)

// APIRoute is a registered API endpoint definition
type APIRoute struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Path   string `json:"path"`
	Method string `json:"method"`
}

// ParseRouteID validates a route identifier taken from a URL path
func ParseRouteID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apperror.InvalidArgument("invalid api route id")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.InvalidArgument("invalid api route id")
	}
	return id, nil
}
