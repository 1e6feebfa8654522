package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apilog-admin/internal/config"
	"apilog-admin/internal/domain/entity"
)

type parsed struct {
	Filter entity.LogFilter
	Page   entity.Page
}

func parseQuery(t *testing.T, cfg config.PaginationConfig, query string) parsed {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(parsed{Filter: parseLogFilter(c), Page: parsePage(c, cfg)})
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/"+query, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out parsed
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestParsePageDefaults(t *testing.T) {
	cfg := config.PaginationConfig{DefaultLimit: 20}

	cases := map[string]entity.Page{
		"":                       {Limit: 20, Offset: 0},
		"?limit=5&offset=10":     {Limit: 5, Offset: 10},
		"?limit=abc&offset=xyz":  {Limit: 20, Offset: 0},
		"?limit=0":               {Limit: 20, Offset: 0},
		"?limit=-3&offset=-1":    {Limit: 20, Offset: 0},
		"?limit=1000":            {Limit: 1000, Offset: 0},
		"?limit=15abc&offset=5x": {Limit: 15, Offset: 5},
		"?limit=2.9":             {Limit: 2, Offset: 0},
	}
	for query, want := range cases {
		assert.Equal(t, want, parseQuery(t, cfg, query).Page, query)
	}
}

func TestParsePageMaxLimit(t *testing.T) {
	cfg := config.PaginationConfig{DefaultLimit: 25, MaxLimit: 100}

	assert.Equal(t, 100, parseQuery(t, cfg, "?limit=1000").Page.Limit)
	assert.Equal(t, 25, parseQuery(t, cfg, "").Page.Limit)
	assert.Equal(t, 50, parseQuery(t, cfg, "?limit=50").Page.Limit)
}

func TestParseLogFilter(t *testing.T) {
	cfg := config.PaginationConfig{DefaultLimit: 20}

	got := parseQuery(t, cfg, "?routeId=3&status=500&ipAddress=10.0&startDate=2024-01-01&endDate=2024-01-31").Filter
	require.NotNil(t, got.RouteID)
	require.NotNil(t, got.Status)
	assert.Equal(t, int64(3), *got.RouteID)
	assert.Equal(t, 500, *got.Status)
	assert.Equal(t, "10.0", got.IPAddress)
	assert.Equal(t, "2024-01-01", got.StartDate)
	assert.Equal(t, "2024-01-31", got.EndDate)
}

func TestParseLogFilterLenientNumbers(t *testing.T) {
	cfg := config.PaginationConfig{DefaultLimit: 20}

	for _, query := range []string{"", "?routeId=abc&status=ok", "?routeId=0&status=0", "?routeId=&status=", "?routeId=-&status=x200"} {
		got := parseQuery(t, cfg, query).Filter
		assert.Nil(t, got.RouteID, query)
		assert.Nil(t, got.Status, query)
		assert.Empty(t, got.IPAddress, query)
	}
}

func TestParseLogFilterLeadingNumber(t *testing.T) {
	cfg := config.PaginationConfig{DefaultLimit: 20}

	got := parseQuery(t, cfg, "?routeId=%207x&status=200abc").Filter
	require.NotNil(t, got.RouteID)
	require.NotNil(t, got.Status)
	assert.Equal(t, int64(7), *got.RouteID)
	assert.Equal(t, 200, *got.Status)
}

func TestParseLogFilterPassesTextThrough(t *testing.T) {
	cfg := config.PaginationConfig{DefaultLimit: 20}

	got := parseQuery(t, cfg, "?ipAddress=%2010.0%20&startDate=2024-01-01%2000:00:00&endDate=%202024-02-01").Filter
	assert.Equal(t, " 10.0 ", got.IPAddress)
	assert.Equal(t, "2024-01-01 00:00:00", got.StartDate)
	assert.Equal(t, " 2024-02-01", got.EndDate)
}
