package handler

import (
	"github.com/arunkarthik0712/travel-planner-backend/internal/controller"
	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authController *controller.AuthController
	validator      *utils.Validator
}

func NewAuthHandler(authController *controller.AuthController, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authController: authController,
		validator:      validator,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return respondError(c, err)
	}

	user, err := h.authController.Register(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(user, "Registration Successful. Check email for activation"))
}

func (h *AuthHandler) Activate(c *fiber.Ctx) error {
	if err := h.authController.Activate(c.UserContext(), c.Params("token")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Account activated successfully"))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return respondError(c, err)
	}

	res, err := h.authController.Login(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(res, "Login successful"))
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req models.ForgotPasswordRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return respondError(c, err)
	}

	if err := h.authController.ForgotPassword(c.UserContext(), req.Email); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Password reset link sent"))
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req models.ResetPasswordRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return respondError(c, err)
	}

	if err := h.authController.ResetPassword(c.UserContext(), c.Params("token"), req.Password); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Password reset successfully"))
}
