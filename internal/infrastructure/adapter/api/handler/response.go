package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/studrev/internal/domain/error"
	coreport "github.com/amirhossein-jamali/studrev/internal/domain/port/core"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/api/dto"
)

// Client-facing messages. Existing quiz clients compare some of these verbatim.
const (
	msgEmailExists        = "Email exists"
	msgInvalidCredentials = "Invalid credentials"
	msgUnknownUser        = "Unknown user"
	msgInvalidScore       = "Invalid score"
	msgInvalidRequest     = "Invalid request format"
	msgMissingFields      = "Email and password are required"
	msgMissingEmail       = "Email is required"
	msgPoolUnavailable    = "Question pool unavailable"
	msgInternal           = "Internal server error"
)

func fail(c *gin.Context, status int, message string, err error) {
	resp := dto.ErrorResponse{OK: false, Message: message}
	if err != nil {
		resp.Code = domainerr.ErrorCode(err)
	}
	c.JSON(status, resp)
}

// internalError logs an unexpected failure and answers 500
func internalError(c *gin.Context, logger coreport.Logger, message string, err error) {
	fields := map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	}
	var sessionErr *domainerr.SessionError
	if errors.As(err, &sessionErr) {
		for k, v := range sessionErr.LogFields() {
			fields[k] = v
		}
	}
	logger.Error(message, fields)

	_ = c.Error(err)
	fail(c, http.StatusInternalServerError, msgInternal, err)
}
