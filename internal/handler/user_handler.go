package handler

import (
	"github.com/arunkarthik0712/travel-planner-backend/internal/controller"
	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userController *controller.UserController
}

func NewUserHandler(userController *controller.UserController) *UserHandler {
	return &UserHandler{
		userController: userController,
	}
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.userController.GetUserByID(c.UserContext(), c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(user, ""))
}
