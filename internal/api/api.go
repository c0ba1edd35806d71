package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joblane/joblane/internal/auth"
	"github.com/joblane/joblane/internal/models"
)

// JobStore is the listing persistence the handlers run against.
// *db.JobStore satisfies it; tests substitute an in-memory implementation.
type JobStore interface {
	Insert(ctx context.Context, job *models.Job) error
	List(ctx context.Context) ([]models.Job, error)
	FindByID(ctx context.Context, id string) (*models.Job, error)
	Update(ctx context.Context, id string, job *models.Job) error
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	authService *auth.Service
	jobs        JobStore
	staticDir   string
}

func NewHandler(authService *auth.Service, jobs JobStore, staticDir string) *Handler {
	return &Handler{authService: authService, jobs: jobs, staticDir: staticDir}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	InitValidation()

	apiGroup := router.Group("/api")

	userGroup := apiGroup.Group("/users")
	userGroup.POST("/signup", h.handleSignup)
	userGroup.POST("/login", h.handleLogin)
	userGroup.GET("/me", RequireAuth(h.authService), h.handleMe)

	jobGroup := apiGroup.Group("/jobs")
	jobGroup.GET("", h.handleListJobs)
	jobGroup.GET("/:id", h.handleGetJob)
	jobGroup.POST("", RequireAuth(h.authService), h.handleCreateJob)
	jobGroup.PUT("/:id", RequireAuth(h.authService), h.handleUpdateJob)
	jobGroup.DELETE("/:id", RequireAuth(h.authService), h.handleDeleteJob)

	router.NoRoute(h.handleNoRoute)
}

type signupRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	Username         string `json:"username"`
	PhoneNumber      string `json:"phone_number" binding:"required"`
	Gender           string `json:"gender" binding:"required"`
	DateOfBirth      string `json:"date_of_birth" binding:"required"`
	MembershipStatus string `json:"membership_status" binding:"required"`
	Bio              string `json:"bio"`
	Address          string `json:"address"`
	ProfilePicture   string `json:"profile_picture"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		writeFieldError(c, "date_of_birth", "must be a valid date")
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), auth.SignupInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Username:         req.Username,
		PhoneNumber:      req.PhoneNumber,
		Gender:           req.Gender,
		DateOfBirth:      dob,
		MembershipStatus: req.MembershipStatus,
		Bio:              req.Bio,
		Address:          req.Address,
		ProfilePicture:   req.ProfilePicture,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingField),
			errors.Is(err, auth.ErrEmailInvalid),
			errors.Is(err, auth.ErrPasswordTooWeak):
			writeError(c, http.StatusBadRequest, strings.TrimPrefix(err.Error(), "auth: "))
		case errors.Is(err, auth.ErrEmailExists):
			writeError(c, http.StatusConflict, "email already registered")
		default:
			writeInternalError(c, "failed to sign up", err)
		}
		return
	}

	c.JSON(http.StatusCreated, authBody(result))
}

func (h *Handler) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeInternalError(c, "failed to log in", err)
		return
	}

	c.JSON(http.StatusOK, authBody(result))
}

func (h *Handler) handleMe(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		// identity vanished between middleware and handler
		writeError(c, http.StatusUnauthorized, "request is not authorized")
		return
	}

	c.JSON(http.StatusOK, userBody(user))
}

// handleNoRoute serves the SPA for non-API paths and a structured 404 for
// unmatched API routes.
func (h *Handler) handleNoRoute(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api") {
		writeError(c, http.StatusNotFound, "unknown endpoint")
		return
	}

	if h.staticDir == "" {
		writeError(c, http.StatusNotFound, "unknown endpoint")
		return
	}

	requested := filepath.Join(h.staticDir, filepath.Clean("/"+c.Request.URL.Path))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		c.File(requested)
		return
	}

	c.File(filepath.Join(h.staticDir, "index.html"))
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// authBody flattens the public user fields and the token into one response
// object, matching what the frontend stores after signup/login.
func authBody(result *auth.AuthResult) gin.H {
	body := userBody(result.User)
	body["token"] = result.Token
	body["expiresAt"] = result.ExpiresAt.Format(time.RFC3339)
	return body
}

func userBody(user models.User) gin.H {
	body := gin.H{
		"_id":               user.ID.Hex(),
		"name":              user.Name,
		"email":             user.Email,
		"phone_number":      user.PhoneNumber,
		"gender":            user.Gender,
		"date_of_birth":     user.DateOfBirth.Format(time.RFC3339),
		"membership_status": user.MembershipStatus,
		"createdAt":         user.CreatedAt.Format(time.RFC3339),
		"updatedAt":         user.UpdatedAt.Format(time.RFC3339),
	}

	if user.Username != "" {
		body["username"] = user.Username
	}
	if user.Bio != "" {
		body["bio"] = user.Bio
	}
	if user.Address != "" {
		body["address"] = user.Address
	}
	if user.ProfilePicture != "" {
		body["profile_picture"] = user.ProfilePicture
	}

	return body
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func writeFieldError(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid payload",
		"details": gin.H{field: message},
	})
}

func writeInternalError(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
