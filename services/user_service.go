package services

import (
	"context"

	"ExpenseAPI/models"
	"ExpenseAPI/repositories"
	"ExpenseAPI/utils"
)

type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetUserProfile returns the account behind an authenticated request. The
// token may outlive the account, so a missing user is NotFound.
func (s *UserService) GetUserProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.NewAppError(utils.KindServerError, err, utils.MsgServerError)
	}
	if user == nil {
		return nil, utils.NewAppError(utils.KindNotFound, nil, utils.MsgNotFound)
	}
	return user, nil
}
