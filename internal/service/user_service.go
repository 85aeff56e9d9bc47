package service

import (
	"context"

	"socialpulse/internal/models"
	"socialpulse/internal/repository"
)

type UserService interface {
	GetUserInfo(ctx context.Context, userID int64) (*models.User, error)
	RemoveUser(ctx context.Context, userID int64) error
}

type userService struct {
	u repository.UserRepository
}

func NewUserService(u repository.UserRepository) UserService {
	return &userService{u: u}
}

func (s *userService) GetUserInfo(ctx context.Context, userID int64) (*models.User, error) {
	user, exists, err := s.u.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NotFound("user not found")
	}
	return user, nil
}

func (s *userService) RemoveUser(ctx context.Context, userID int64) error {
	_, exists, err := s.u.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return NotFound("user not found")
	}
	return s.u.Remove(ctx, userID)
}
