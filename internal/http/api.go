package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"userbase/internal/auth"
	"userbase/internal/domain"
	"userbase/internal/httperr"
	"userbase/internal/repository"
	"userbase/internal/schema"
	"userbase/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users  service.UserService
	repo   repository.UserRepository
	tokens *auth.TokenManager
	logger *logrus.Logger
	secure bool
}

// NewHandler builds the route handler. secure controls the Secure flag on
// the session cookie and should be true in production.
func NewHandler(users service.UserService, repo repository.UserRepository, tokens *auth.TokenManager, logger *logrus.Logger, secure bool) *Handler {
	return &Handler{
		users:  users,
		repo:   repo,
		tokens: tokens,
		logger: logger,
		secure: secure,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestLogger(h.logger))
	router.Use(corsMiddleware())

	router.POST("/signup", h.signUp)
	router.POST("/login", h.login)
	router.POST("/logout", h.logout)

	protected := router.Group("/", auth.RequireAuth(h.tokens, h.repo, h.respondError))
	protected.GET("/", h.listUsers)
	protected.GET("/:username", h.getUserByUsername)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Unknown endpoint"})
	})
}

// JSONResponse is the uniform envelope for every response.
type JSONResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func (h *Handler) signUp(c *gin.Context) {
	var req schema.RegisterRequest
	// bind errors are deliberately ignored: missing or empty bodies leave
	// the zero value, and schema validation reports the missing fields
	_ = c.ShouldBindJSON(&req)

	payload, err := schema.Register(req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.tokens.Sign(user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.setSessionCookie(c, token)

	c.JSON(http.StatusCreated, JSONResponse{
		Status:  "success",
		Message: "User signed up successfully!",
		Data:    userToResponse(*user),
	})
}

func (h *Handler) login(c *gin.Context) {
	var req schema.LoginRequest
	_ = c.ShouldBindJSON(&req)

	payload, err := schema.Login(req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.tokens.Sign(user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.setSessionCookie(c, token)

	c.JSON(http.StatusOK, JSONResponse{
		Status:  "success",
		Message: "User logged in successfully",
		Data:    userToResponse(*user),
	})
}

// logout clears the session cookie regardless of prior auth state.
func (h *Handler) logout(c *gin.Context) {
	h.clearSessionCookie(c)

	c.JSON(http.StatusOK, JSONResponse{
		Status:  "success",
		Message: "User logged out successfully",
	})
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}

	c.JSON(http.StatusOK, JSONResponse{
		Status:  "success",
		Message: "Users fetched successfully!",
		Data: gin.H{
			"total": len(resp),
			"users": resp,
		},
	})
}

func (h *Handler) getUserByUsername(c *gin.Context) {
	username, err := schema.Username(c.Param("username"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	user, err := h.users.GetByUsername(c.Request.Context(), username)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, JSONResponse{
		Status:  "success",
		Message: "User fetched successfully",
		Data:    userToResponse(*user),
	})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.CookieName, token, int(h.tokens.TTL().Seconds()), "/", "", h.secure, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.secure, true)
}

// respondError is the single translator from internal failures to the
// response envelope. Unclassified errors are logged with their details and
// answered with a generic 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	var herr *httperr.Error
	if !errors.As(err, &herr) {
		herr = httperr.Internal(err)
	}

	if herr.Kind == httperr.KindInternal {
		h.logger.WithError(err).Errorf("%s %s failed", c.Request.Method, c.Request.URL.Path)
	} else {
		h.logger.Warnf("%s %s: %s", c.Request.Method, c.Request.URL.Path, herr.Message)
	}

	c.AbortWithStatusJSON(herr.Status(), JSONResponse{
		Status:  "error",
		Message: herr.Message,
	})
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Info("request")
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
