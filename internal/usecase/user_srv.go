package usecase

import (
	"context"
	"fmt"
	"time"

	"todo-app/internal/data/repository"
	"todo-app/internal/dto/request"
	"todo-app/internal/dto/response"
	"todo-app/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserInfoResponse, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) (*response.UserInfoResponse, error)
	UpdatePhone(ctx context.Context, userID uuid.UUID, req *request.UpdatePhoneRequest) (*response.UserInfoResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserInfoResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get profile")
	}
	if user == nil {
		// Token is valid but the row is gone, inconsistent store state
		return nil, fmt.Errorf("user not found")
	}

	return response.UserToInfoResponse(user), nil
}

func (us *userService) UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) (*response.UserInfoResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Update password validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update password")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	user.PasswordHash = hashedPassword
	user.UpdatedAt = time.Now()

	if err := us.userRepo.Update(ctx, user); err != nil {
		us.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update password")
	}

	us.log.Info("Password updated", zap.String("user_id", userID.String()))

	return response.UserToInfoResponse(user), nil
}

func (us *userService) UpdatePhone(ctx context.Context, userID uuid.UUID, req *request.UpdatePhoneRequest) (*response.UserInfoResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Update phone validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update phone number")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	user.Phone = &req.NewPhoneNumber
	user.UpdatedAt = time.Now()

	if err := us.userRepo.Update(ctx, user); err != nil {
		us.log.Error("Failed to update phone number", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update phone number")
	}

	us.log.Info("Phone number updated", zap.String("user_id", userID.String()))

	return response.UserToInfoResponse(user), nil
}
