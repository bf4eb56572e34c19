package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Affsyamf/pemesananhotel-sub000/config"
	"github.com/Affsyamf/pemesananhotel-sub000/models"
	"github.com/Affsyamf/pemesananhotel-sub000/utils"
)

type registerPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	username := strings.TrimSpace(payload.Username)
	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if username == "" || email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "username, email and password are required")
		return
	}
	if !strings.Contains(email, "@") {
		utils.JSONError(c, http.StatusBadRequest, "invalid email")
		return
	}
	if len(payload.Password) < 6 {
		utils.JSONError(c, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	var dup int64
	if err := config.DB.Model(&models.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&dup).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if dup > 0 {
		utils.JSONError(c, http.StatusBadRequest, "email or username already registered")
		return
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create user")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

func Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if !utils.CheckPassword(user.Password, payload.Password) {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"role":  user.Role,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}
