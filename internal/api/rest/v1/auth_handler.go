package v1

import (
	"net/http"

	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles sign up, sign in and sign out requests
type AuthHandler interface {
	SignUp(ctx *gin.Context)
	SignIn(ctx *gin.Context)
	SignOut(ctx *gin.Context)
}

type authHandler struct {
	authService auth.AuthService
	logger      logger.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService auth.AuthService, logger logger.Logger) AuthHandler {
	return &authHandler{
		authService: authService,
		logger:      logger,
	}
}

// SignUp registers a user and answers with its first session token
func (h *authHandler) SignUp(ctx *gin.Context) {
	var req CredentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	token, err := h.authService.SignUp(ctx.Request.Context(), &auth.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		abortWithError(ctx, err, h.logger)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"session_id": token})
}

// SignIn answers with a new session token for valid credentials
func (h *authHandler) SignIn(ctx *gin.Context) {
	var req CredentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortWithError(ctx, auth.ErrInvalidCredentials, h.logger)
		return
	}

	token, err := h.authService.SignIn(ctx.Request.Context(), &auth.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		abortWithError(ctx, err, h.logger)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"session_id": token})
}

// SignOut ends the session the request was authenticated with
func (h *authHandler) SignOut(ctx *gin.Context) {
	caller, ok := identity(ctx)
	if !ok {
		return
	}

	if err := h.authService.SignOut(ctx.Request.Context(), caller.SessionToken); err != nil {
		abortWithError(ctx, err, h.logger)
		return
	}
	ctx.Status(http.StatusNoContent)
}
