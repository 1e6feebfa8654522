package entity

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type PageMeta struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

type LogListResponse struct {
	Success bool          `json:"success"`
	Logs    []APILogEntry `json:"logs"`
	Meta    PageMeta      `json:"meta"`
}

type RouteListResponse struct {
	Success bool       `json:"success"`
	Routes  []APIRoute `json:"routes"`
}

func NewSuccessResponse(data interface{}, message string) *APIResponse {
	return &APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func NewErrorResponse(code int, kind string, message string) *APIResponse {
	return &APIResponse{
		Success: false,
		Message: message,
		Error: &APIError{
			Code:    code,
			Kind:    kind,
			Message: message,
		},
	}
}

func NewLogListResponse(page *LogPage) *LogListResponse {
	logs := page.Logs
	if logs == nil {
		logs = []APILogEntry{}
	}
	return &LogListResponse{
		Success: true,
		Logs:    logs,
		Meta: PageMeta{
			Total:  page.Total,
			Limit:  page.Limit,
			Offset: page.Offset,
		},
	}
}

func NewRouteListResponse(routes []APIRoute) *RouteListResponse {
	if routes == nil {
		routes = []APIRoute{}
	}
	return &RouteListResponse{Success: true, Routes: routes}
}
