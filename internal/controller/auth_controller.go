package controller

import (
	"context"

	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/internal/service"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func (c *AuthController) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	return c.authService.Register(ctx, req)
}

func (c *AuthController) Activate(ctx context.Context, token string) error {
	return c.authService.Activate(ctx, token)
}

func (c *AuthController) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	return c.authService.Login(ctx, req)
}

func (c *AuthController) ForgotPassword(ctx context.Context, email string) error {
	return c.authService.ForgotPassword(ctx, email)
}

func (c *AuthController) ResetPassword(ctx context.Context, token, newPassword string) error {
	return c.authService.ResetPassword(ctx, token, newPassword)
}
