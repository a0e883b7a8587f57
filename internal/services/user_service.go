package services

import (
	"context"
	"log"
	"time"

	"diamondstore/internal/models/response_models"
	"diamondstore/internal/repositories"
	"diamondstore/pkg/utils"
)

type UserServiceInterface interface {
	GetOrCreateProfile(alienID string, ctx context.Context) (*response_models.UserResponse, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
}

func NewUserService(userRepo repositories.UserRepositoryInterface) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
	}
}

func (u *UserService) GetOrCreateProfile(alienID string, ctx context.Context) (*response_models.UserResponse, error) {

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	user, err := u.userRepo.FindOrCreateByAlienID(alienID, ctx)
	if err != nil {
		log.Printf("find or create user %s: %v", alienID, err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.UserResponse{
		ID:        user.ID.String(),
		AlienID:   user.AlienID,
		CreatedAt: time.Unix(user.CreatedAt, 0).UTC().Format(time.RFC3339),
		UpdatedAt: time.Unix(user.UpdatedAt, 0).UTC().Format(time.RFC3339),
	}, nil
}
