package service

import (
	"career_path_backend/internal/config"
	"career_path_backend/internal/model"
	"career_path_backend/internal/repository"
	"career_path_backend/internal/util"
	"career_path_backend/pkg/logger"
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	MinPasswordLength = 6
	MinAge            = 13
)

type RegisterInput struct {
	Email            string
	Password         string
	ConfirmPassword  string
	Username         string
	FullName         string
	Age              int
	EducationLevel   string
	CurrentEducation string
}

type ProfileView struct {
	Email   string         `json:"email"`
	Profile *model.Profile `json:"profile"`
}

type AuthService struct {
	UserRepo    *repository.UserRepository
	ProfileRepo *repository.ProfileRepository
	Cfg         *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, profileRepo *repository.ProfileRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		Cfg:         cfg,
	}
}

func validateRegistration(in *RegisterInput) error {
	switch {
	case strings.TrimSpace(in.Email) == "":
		return util.NewValidationError("email is required")
	case strings.TrimSpace(in.Username) == "":
		return util.NewValidationError("username is required")
	case in.Password != in.ConfirmPassword:
		return util.NewValidationError("passwords do not match")
	case len(in.Password) < MinPasswordLength:
		return util.NewValidationError("password must be at least 6 characters")
	case in.Age < MinAge:
		return util.NewValidationError("you must be at least 13 years old to register")
	}
	return nil
}

// Register 创建账号与资料，校验失败时不会访问数据库
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)
	if err := validateRegistration(&in); err != nil {
		return nil, err
	}

	_, err := s.UserRepo.FindByEmail(ctx, in.Email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	taken, err := s.ProfileRepo.UsernameTaken(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    in.Email,
		Password: string(hashedPassword),
	}
	profile := &model.Profile{
		Username:         in.Username,
		FullName:         in.FullName,
		Age:              in.Age,
		EducationLevel:   in.EducationLevel,
		CurrentEducation: in.CurrentEducation,
	}
	if err := s.UserRepo.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	logger.Log.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, util.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if user.Disabled {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user.ID, user.Email, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	if err := s.UserRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Log.Warn("update last login failed", zap.String("user_id", user.ID), zap.Error(err))
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*ProfileView, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	profile, err := s.ProfileRepo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProfileMissing
	}
	if err != nil {
		return nil, err
	}
	return &ProfileView{Email: user.Email, Profile: profile}, nil
}
