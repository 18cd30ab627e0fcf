package controllers

import (
	"errors"
	"strings"

	"looncamp/dto"
	"looncamp/response"
	"looncamp/services"
	"looncamp/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const accessTokenExpiryMinutes = 3 * 24 * 60

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login signs an operator into the admin panel.
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	if err := validator.ValidateEmail(req.Email); err != nil {
		response.ValidationError(c, "Email address is not valid")
		return
	}

	user, err := services.GetUserByEmail(ac.DB, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, 0, "Wrong email or password")
			return
		}
		response.ServerError(c)
		return
	}

	if err := services.CheckPassword(user.Password, req.Password); err != nil {
		response.Error(c, 0, "Wrong email or password")
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}, accessTokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	services.SetTokenCookies(c, accessToken)
	response.Success(c, dto.LoginResponse{
		AccessToken: accessToken,
		User: dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}

// Logout drops the session cookie. Tokens are short lived, there is no
// server-side revocation list.
func (ac *AuthController) Logout(c *gin.Context) {
	services.ClearTokenCookies(c)
	response.Success(c, nil)
}

// GetProfile returns the signed-in operator, used by the route guard.
func (ac *AuthController) GetProfile(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	userID, _, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var user dto.UserResponse
	if err := ac.DB.Table("users").
		Select("id, name, email, role").
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, user)
}
