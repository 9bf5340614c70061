package service

import (
	"context"

	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	id, err := ParseID("user", userID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, notFound("User", err)
	}
	return user, nil
}
