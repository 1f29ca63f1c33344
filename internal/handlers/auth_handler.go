package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "eixo/internal/errors"
	"eixo/internal/services"
)

// AuthHandler handles signup and login requests.
type AuthHandler struct {
	userService services.UserServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService services.UserServicer) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// SignupRequest represents the signup request payload
type SignupRequest struct {
	Name      string  `json:"name" binding:"required,max=255"`
	Email     string  `json:"email" binding:"required,email,max=255"`
	CPF       string  `json:"cpf" binding:"required,max=14"`
	Phone     string  `json:"phone" binding:"max=32"`
	Password  string  `json:"password" binding:"required,max=128"`
	BirthDate *string `json:"birthDate"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup handles user registration
// @Summary     Register a new user
// @Description Create an account; e-mail and CPF must both be unused
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body SignupRequest true "User registration data"
// @Success     201 {object} models.User "Created user"
// @Failure     400 {object} ErrorResponse "Invalid input or e-mail/CPF already registered"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var birthDate *time.Time
	if req.BirthDate != nil && *req.BirthDate != "" {
		parsed, err := parseDate(*req.BirthDate)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
		birthDate = &parsed
	}

	user, err := h.userService.Signup(req.Name, req.Email, req.CPF, req.Phone, req.Password, birthDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate with e-mail and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} models.User "Authenticated user"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
