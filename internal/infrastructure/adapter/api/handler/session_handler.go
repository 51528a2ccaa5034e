package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/studrev/internal/domain/error"
	coreport "github.com/amirhossein-jamali/studrev/internal/domain/port/core"
	"github.com/amirhossein-jamali/studrev/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/api/dto"
)

// SessionHandler serves session batches and records completions
type SessionHandler struct {
	sessionUseCase usecase.SessionUseCase
	logger         coreport.Logger
}

// NewSessionHandler creates a new session handler instance
func NewSessionHandler(sessionUseCase usecase.SessionUseCase, logger coreport.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		logger:         logger,
	}
}

// sessionNumber parses :n; anything that is not an integer is an unknown session
func sessionNumber(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		return 0, false
	}
	return n, true
}

// GetSession handles GET /api/session/:n
func (h *SessionHandler) GetSession(c *gin.Context) {
	n, ok := sessionNumber(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{OK: false})
		return
	}

	items, err := h.sessionUseCase.GetSession(c.Request.Context(), n)
	if err != nil {
		if domainerr.IsInvalidSessionIndexError(err) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{OK: false})
			return
		}
		internalError(c, h.logger, "Error loading session", err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{OK: true, Items: items})
}

// CompleteSession handles POST /api/session/:n/complete
func (h *SessionHandler) CompleteSession(c *gin.Context) {
	n, ok := sessionNumber(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{OK: false})
		return
	}

	var req dto.CompleteSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid completion request format", map[string]any{
			"session": n,
			"error":   err.Error(),
		})
		fail(c, http.StatusBadRequest, msgInvalidRequest, domainerr.ErrInvalidRequest)
		return
	}

	_, err := h.sessionUseCase.CompleteSession(c.Request.Context(), n, usecase.CompletionRequest{
		Email:   req.Email,
		Correct: *req.Correct,
		Max:     *req.Max,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.OKResponse{OK: true})
	case domainerr.IsInvalidSessionIndexError(err):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{OK: false})
	case errors.Is(err, domainerr.ErrUserNotFound):
		fail(c, http.StatusNotFound, msgUnknownUser, err)
	case errors.Is(err, domainerr.ErrInvalidScore):
		fail(c, http.StatusBadRequest, msgInvalidScore, err)
	case errors.Is(err, domainerr.ErrInvalidRequest):
		fail(c, http.StatusBadRequest, msgInvalidRequest, err)
	default:
		internalError(c, h.logger, "Error completing session", err)
	}
}

// GetHistory handles GET /api/history?email=
func (h *SessionHandler) GetHistory(c *gin.Context) {
	history, err := h.sessionUseCase.GetHistory(c.Request.Context(), c.Query("email"))
	if err != nil {
		if errors.Is(err, domainerr.ErrInvalidRequest) {
			fail(c, http.StatusBadRequest, msgMissingEmail, err)
			return
		}
		internalError(c, h.logger, "Error loading history", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewHistoryResponse(history))
}
