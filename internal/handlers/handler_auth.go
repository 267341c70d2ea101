package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const defaultAuthRateLimit = "5-M"

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvc
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvc) *AuthHandler {
	return &AuthHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes.
// Register and login are rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvc) {
	h := NewAuthHandler(authService)

	ipLimiter, err := middleware.NewMemoryLimiter(cfg.AuthRateLimit)
	if err != nil {
		slog.Warn("Invalid auth rate limit, using default",
			slog.String("rate", cfg.AuthRateLimit), slog.String("default", defaultAuthRateLimit), slog.String("error", err.Error()))
		ipLimiter, _ = middleware.NewMemoryLimiter(defaultAuthRateLimit)
	}
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", limitMiddleware, h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/google", h.GoogleSignIn)
	}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a local user and returns an access token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   user body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 409 {object} ErrorResponse "Username or email already taken"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 500 {object} ErrorResponse "Failed to register user"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "request format", err)
		return
	}

	logger.Info("Received registration request", slog.String("username", req.Username))

	resp, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to register user")
		return
	}

	logger.Info("User registered successfully", slog.Int64("user_id", resp.User.UserID))
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Log in
// @Description Authenticates with a username or email and a password
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse "Invalid input format"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 500 {object} ErrorResponse "Failed to log in"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "request format", err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to log in")
		return
	}

	logger.Info("User logged in", slog.Int64("user_id", resp.User.UserID))
	c.JSON(http.StatusOK, resp)
}

// GoogleSignIn godoc
// @Summary Sign in with Google
// @Description Verifies a Google ID token, creating the user on first sign-in
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   token body dto.GoogleSignInRequest true "Google ID token"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse "Invalid input format"
// @Failure 401 {object} ErrorResponse "Invalid Google token"
// @Failure 503 {object} ErrorResponse "Google sign-in is not configured"
// @Failure 500 {object} ErrorResponse "Failed to sign in with Google"
// @Router /auth/google [post]
func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "request format", err)
		return
	}

	resp, err := h.authService.SignInWithGoogle(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to sign in with Google")
		return
	}

	logger.Info("User signed in with Google", slog.Int64("user_id", resp.User.UserID))
	c.JSON(http.StatusOK, resp)
}
