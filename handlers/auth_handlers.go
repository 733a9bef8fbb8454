// handlers/auth_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/smarttravelhq/smart-travel-backend/models"
	"github.com/smarttravelhq/smart-travel-backend/utils"
)

// Signup handles new user registration
func Signup(c *gin.Context) {
	var request models.SignupRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.AuthService.Signup(request.Name, request.Email, request.Password); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"redirect": "/login-page"})
}

// Login handles credential verification and starts a session
func Login(c *gin.Context) {
	var request models.LoginRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	token, user, err := handlerServices.AuthService.Login(request.Email, request.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	// Session cookie; HttpOnly keeps the token away from page scripts
	c.SetCookie(utils.SessionCookieName, token, 24*60*60, "/", "", false, true)

	utils.HandleSuccess(c, gin.H{
		"redirect":  "/dashboard",
		"user_name": user.Name,
	})
}

// Logout clears the session cookie
func Logout(c *gin.Context) {
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", false, true)
	utils.HandleSuccess(c, gin.H{"redirect": "/login-page"})
}
