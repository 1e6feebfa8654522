package entity

const (
	DefaultLimit  = 20
	DefaultOffset = 0
)

// Page is a limit/offset window
type Page struct {
	Limit  int
	Offset int
}

// LogFilter holds the optional criteria of a log listing.
// Nil pointers and empty strings mean "not filtered".
type LogFilter struct {
	RouteID   *int64
	Status    *int
	IPAddress string
	StartDate string // inclusive, compared against created_at as-is
	EndDate   string // inclusive, compared against created_at as-is
}

// LogQuery is what the log repository executes.
// RouteScope is a mandatory route restriction set by the route-scoped listing.
type LogQuery struct {
	RouteScope *int64
	Filter     LogFilter
	Page       Page
}
