package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/studrev/internal/domain/error"
	coreport "github.com/amirhossein-jamali/studrev/internal/domain/port/core"
	"github.com/amirhossein-jamali/studrev/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/api/dto"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// Register handles POST /api/register
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgInvalidRequest, domainerr.ErrInvalidRequest)
		return
	}

	user, err := h.userUseCase.Register(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.UserResponse{OK: true, User: dto.UserView{Email: user.Email}})
	case domainerr.IsDuplicateEmailError(err):
		fail(c, http.StatusBadRequest, msgEmailExists, err)
	case errors.Is(err, domainerr.ErrInvalidRequest):
		fail(c, http.StatusBadRequest, msgMissingFields, err)
	default:
		internalError(c, h.logger, "Error registering user", err)
	}
}

// Login handles POST /api/login
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, msgInvalidRequest, domainerr.ErrInvalidRequest)
		return
	}

	user, err := h.userUseCase.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.UserResponse{OK: true, User: dto.UserView{Email: user.Email}})
	case domainerr.IsInvalidCredentialsError(err):
		fail(c, http.StatusUnauthorized, msgInvalidCredentials, err)
	default:
		internalError(c, h.logger, "Error logging in", err)
	}
}
