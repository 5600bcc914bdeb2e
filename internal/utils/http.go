package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tumpangan/liveride/internal/pkg/apperrors"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response body. Code is the
// machine-readable error code from the taxonomy.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response with an explicit status and code
func ErrorResponseHandler(c echo.Context, statusCode int, code, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Code:    code,
		Message: message,
	})
}

// AppErrorResponse maps an application error onto the uniform error body
func AppErrorResponse(c echo.Context, err error) error {
	appErr := apperrors.FromError(err)
	return ErrorResponseHandler(c, appErr.Kind.HTTPStatus(), appErr.Code, appErr.Message)
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, code, message string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, code, message)
}

// UnauthenticatedResponse sends a 401 Unauthorized response for missing or
// invalid credentials
func UnauthenticatedResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, "UNAUTHENTICATED", message)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, code, message string) error {
	if message == "" {
		message = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, code, message)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, code, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, code, message)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, code, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, code, message)
}
