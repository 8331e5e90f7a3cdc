package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authModel "github.com/Harshrawat27/rently/internals/features/users/auth/model"
	"github.com/Harshrawat27/rently/internals/features/users/auth/service"
	helper "github.com/Harshrawat27/rently/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return service.LoginGoogle(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user authModel.User
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	return helper.Success(c, "OK", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"is_active": user.IsActive,
	})
}
