package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusCode is the outcome category of a controller operation.
type StatusCode string

const (
	StatusOK         StatusCode = "OK"
	StatusCreated    StatusCode = "CREATED"
	StatusBadRequest StatusCode = "BAD_REQUEST"
	StatusNotFound   StatusCode = "NOT_FOUND"
	StatusConflict   StatusCode = "CONFLICT"
)

// IsSuccess reports whether the status belongs to a success path.
func (s StatusCode) IsSuccess() bool {
	return s == StatusOK || s == StatusCreated
}

// HTTPStatus maps the status to its HTTP equivalent.
func (s StatusCode) HTTPStatus() int {
	switch s {
	case StatusOK:
		return http.StatusOK
	case StatusCreated:
		return http.StatusCreated
	case StatusBadRequest:
		return http.StatusBadRequest
	case StatusNotFound:
		return http.StatusNotFound
	case StatusConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Response is the uniform result of every controller operation.
// Data is only meaningful when HasData is true.
type Response[T any] struct {
	Status  StatusCode
	Message string
	Data    T
	HasData bool
}

// Of builds a response without payload.
func Of[T any](status StatusCode, message string) Response[T] {
	return Response[T]{Status: status, Message: message}
}

// WithData builds a response carrying a payload.
func WithData[T any](status StatusCode, message string, data T) Response[T] {
	return Response[T]{Status: status, Message: message, Data: data, HasData: true}
}

// Forward re-labels a failed response for a different payload type.
func Forward[T, U any](r Response[U]) Response[T] {
	return Of[T](r.Status, r.Message)
}

func (r Response[T]) IsSuccess() bool {
	return r.Status.IsSuccess()
}

// ========================================
// HTTP RENDERING
// ========================================

type envelope struct {
	Success bool        `json:"success"`
	Status  StatusCode  `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// JSON writes a controller response using the mapped HTTP status.
func JSON[T any](c *gin.Context, r Response[T]) {
	body := envelope{
		Success: r.IsSuccess(),
		Status:  r.Status,
		Message: r.Message,
	}
	if r.HasData {
		body.Data = r.Data
	}
	c.JSON(r.Status.HTTPStatus(), body)
}

// BadRequest writes a transport-level rejection (e.g. unreadable JSON body).
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, envelope{
		Success: false,
		Status:  StatusBadRequest,
		Message: message,
	})
}

// InternalError aborts the request with a 500 envelope.
func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, envelope{
		Success: false,
		Status:  "INTERNAL_ERROR",
		Message: "Internal server error",
	})
}
