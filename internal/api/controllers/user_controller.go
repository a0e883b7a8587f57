package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"diamondstore/internal/services"
	"diamondstore/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Me returns the caller's profile, creating the row on first contact.
func (u *UserController) Me(c *gin.Context) {

	alienID := c.GetString("alien_id")
	if alienID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authorization token")
		return
	}

	profile, err := u.userService.GetOrCreateProfile(alienID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
