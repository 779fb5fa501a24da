package httpdto

// Error codes carried by ErrorResponse besides the service error kinds.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeRateLimited    = "RATE_LIMITED"
	CodeInternal       = "INTERNAL_ERROR"
	CodeUnhealthy      = "UNHEALTHY"
)

// Response wraps operational endpoints (ping, health). User and message
// routes answer with the bare record on success.
type Response[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

func NewSuccessResponse[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data}
}

func NewErrorResponse(msg string, code string) ErrorResponse {
	return ErrorResponse{Error: msg, Code: code}
}
