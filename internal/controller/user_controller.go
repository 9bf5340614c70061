package controller

import (
	"context"

	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/internal/service"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

func (c *UserController) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return c.userService.GetUser(ctx, id)
}
