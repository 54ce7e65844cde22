package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps pipeline failures onto the error envelope. Every
// kind surfaces as an internal failure with the underlying message attached
// as detail; none is retried here.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCatalogQuery),
		errors.Is(err, ErrGenerationFailed),
		errors.Is(err, ErrPlanNotJSON),
		errors.Is(err, ErrPlanSchema):
		log.Printf("Pipeline error: %v", err)
		RespondError(c, http.StatusInternalServerError, err.Error())
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
