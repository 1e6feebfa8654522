package entity

// APILogEntry is one recorded API call joined with its route.
// The api_* fields are nil when the route no longer exists.
type APILogEntry struct {
	ID             int64     `json:"id"`
	RouteID        *int64    `json:"route_id"`
	IPAddress      string    `json:"ip_address"`
	RequestData    *string   `json:"request_data"`
	ResponseStatus int       `json:"response_status"`
	ExecutionTime  float64   `json:"execution_time"`
	CreatedAt      Timestamp `json:"created_at"`
	APIName        *string   `json:"api_name"`
	APIPath        *string   `json:"api_path"`
	APIMethod      *string   `json:"api_method"`
}

// LogPage is one window of a filtered log listing.
// Total counts the whole filtered set, independent of Limit and Offset.
type LogPage struct {
	Logs   []APILogEntry
	Total  int64
	Limit  int
	Offset int
}
