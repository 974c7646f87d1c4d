package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the standard payload shape returned by every endpoint.
// List endpoints additionally carry currentPage/totalPages and a
// per-resource total key (totalDiscussions, totalReports, totalScans).
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a 200 OK response with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    data,
	})
}

// Created sends a 201 Created response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Data:    data,
	})
}

// Paginated sends a list response. totalKey names the per-resource count
// field, e.g. "totalReports".
func Paginated(c *gin.Context, data interface{}, totalKey string, total int64, currentPage, totalPages int) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"data":        data,
		"currentPage": currentPage,
		"totalPages":  totalPages,
		totalKey:      total,
	})
}

// Error sends an error response. The optional detail is only meant for
// development mode; callers decide whether to pass it.
func Error(c *gin.Context, statusCode int, message string, detail ...string) {
	env := Envelope{
		Success: false,
		Message: message,
	}
	if len(detail) > 0 {
		env.Error = detail[0]
	}
	c.JSON(statusCode, env)
}

// BadRequest sends a 400 Bad Request error
func BadRequest(c *gin.Context, message string, detail ...string) {
	Error(c, http.StatusBadRequest, message, detail...)
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalServerError sends a 500 Internal Server Error
func InternalServerError(c *gin.Context, message string, detail ...string) {
	Error(c, http.StatusInternalServerError, message, detail...)
}
