package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/internal/repository"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/bcrypt"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/email"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/jwt"
	"go.uber.org/zap"
)

var (
	errUserExists         = ValidationError{Msg: "User already exists"}
	errInvalidCredentials = ValidationError{Msg: "Invalid credentials"}
	errInactiveAccount    = ValidationError{Msg: "Account is not activated"}
	errInvalidToken       = ValidationError{Msg: "Invalid token"}
)

type AuthService struct {
	users     UserStore
	mailer    Notifier
	tokens    TokenManager
	clientURL string
	logger    *zap.Logger
}

func NewAuthService(users UserStore, mailer Notifier, tokens TokenManager, clientURL string, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		mailer:    mailer,
		tokens:    tokens,
		clientURL: strings.TrimRight(clientURL, "/"),
		logger:    logger.Named("auth"),
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errUserExists
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		IsActive: false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errUserExists
		}
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID.Hex(), jwt.PurposeActivation)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %w", err)
	}

	link := s.clientURL + "/activate/" + token
	if err := s.mailer.Send(ctx, email.ModeBestEffort, email.Activation(user.Email, user.Username, link)); err != nil {
		s.logger.Warn("activation email not queued", zap.String("email", user.Email), zap.Error(err))
	}

	return &models.RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsActive: user.IsActive,
	}, nil
}

func (s *AuthService) Activate(ctx context.Context, token string) error {
	user, err := s.userFromToken(ctx, token, jwt.PurposeActivation)
	if err != nil {
		return err
	}
	return notFound("User", s.users.Activate(ctx, user.ID))
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, errInvalidCredentials
	}
	if !user.IsActive {
		return nil, errInactiveAccount
	}

	token, err := s.tokens.GenerateToken(user.ID.Hex(), jwt.PurposeAccess)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %w", err)
	}

	return &models.LoginResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, address string) error {
	user, err := s.users.GetByEmail(ctx, address)
	if err != nil {
		return notFound("User", err)
	}

	token, err := s.tokens.GenerateToken(user.ID.Hex(), jwt.PurposeReset)
	if err != nil {
		return fmt.Errorf("token generation failed: %w", err)
	}

	link := s.clientURL + "/reset-password/" + token
	if err := s.mailer.Send(ctx, email.ModeBestEffort, email.PasswordReset(user.Email, user.Username, link)); err != nil {
		s.logger.Warn("password reset email not queued", zap.String("email", user.Email), zap.Error(err))
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.userFromToken(ctx, token, jwt.PurposeReset)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return notFound("User", s.users.UpdatePassword(ctx, user.ID, hashedPassword))
}

func (s *AuthService) userFromToken(ctx context.Context, token string, purpose jwt.Purpose) (*models.User, error) {
	userID, err := s.tokens.ValidateToken(token, purpose)
	if err != nil {
		return nil, errInvalidToken
	}
	id, err := ParseID("user", userID)
	if err != nil {
		return nil, errInvalidToken
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, notFound("User", err)
	}
	return user, nil
}
