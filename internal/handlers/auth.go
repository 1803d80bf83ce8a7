package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumit03062/Task-Tracker/internal/auth"
	"github.com/sumit03062/Task-Tracker/internal/models"
	"github.com/sumit03062/Task-Tracker/internal/services"
	"github.com/sumit03062/Task-Tracker/internal/utils"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Country  string `json:"country"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type UserResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Country string `json:"country"`
	Token   string `json:"token,omitempty"`
}

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register creates the account and logs the new user straight in by
// returning a token with the profile.
func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := h.users.Register(req.Name, req.Email, req.Password, req.Country)

	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "user": userResponse(user, token)})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := h.users.Authenticate(req.Email, req.Password)

	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
			return
		}
		respondError(ctx, err)
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "user": userResponse(user, token)})
}

func (h *AuthHandler) Profile(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	user, err := h.users.Profile(currentUser.ID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "user": userResponse(user, "")})
}

func userResponse(user *models.User, token string) UserResponse {
	return UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Country: user.Country,
		Token:   token,
	}
}
