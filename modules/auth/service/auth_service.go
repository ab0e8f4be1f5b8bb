package service

import (
	"context"
	"fmt"
	"time"

	"github.com/devlupca-cloud/njob-creator-sub000/core/cache"
	"github.com/devlupca-cloud/njob-creator-sub000/core/config"
	"github.com/devlupca-cloud/njob-creator-sub000/core/constants"
	"github.com/devlupca-cloud/njob-creator-sub000/core/errors"
	"github.com/devlupca-cloud/njob-creator-sub000/core/logger"
	"github.com/devlupca-cloud/njob-creator-sub000/core/utils"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/auth/dto"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/auth/entity"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/auth/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.CreatorResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, *errors.AppError)
	Logout(ctx context.Context, accessToken string) *errors.AppError
	GetProfile(ctx context.Context, creatorID uuid.UUID) (*dto.CreatorResponse, *errors.AppError)
	UpdateProfile(ctx context.Context, creatorID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.CreatorResponse, *errors.AppError)
}

type AuthService struct {
	repo  repository.CreatorRepositoryInterface
	cache cache.Cache
}

func NewAuthService(repo repository.CreatorRepositoryInterface, c cache.Cache) *AuthService {
	return &AuthService{repo: repo, cache: c}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.CreatorResponse, *errors.AppError) {
	if req.Email == "" || req.Password == "" || req.DisplayName == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "email, password and display_name are required", nil)
	}
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "timezone must be a valid IANA zone name", err)
		}
	}

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:Register:GetByEmail:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check existing account", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "an account with this email already exists", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	creatorSlug, appErr := s.uniqueSlug(ctx, req.DisplayName)
	if appErr != nil {
		return nil, appErr
	}

	creator := &entity.Creator{
		Email:       req.Email,
		Password:    hashed,
		DisplayName: req.DisplayName,
		Slug:        creatorSlug,
		Timezone:    req.Timezone,
	}

	created, err := s.repo.Create(ctx, creator)
	if err != nil {
		logger.Error("AuthService:Register:Create:Error:", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create account", err)
	}

	logger.Info("AuthService:Register:Success", "creator_id", created.ID, "slug", created.Slug)
	return toCreatorResponse(created), nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError) {
	blocked, err := s.cache.IsLoginBlocked(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:Login:IsLoginBlocked:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check login attempts", err)
	}
	if blocked {
		return nil, errors.NewAppError(errors.ErrForbidden, "too many failed attempts, try again later", nil)
	}

	creator, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:Login:GetByEmail:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load account", err)
	}
	if creator == nil || !utils.ComparePassword(creator.Password, req.Password) {
		if _, err := s.cache.IncrementLoginAttempt(ctx, req.Email); err != nil {
			logger.Warn("AuthService:Login:IncrementLoginAttempt:Error:", err)
		}
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	if err := s.cache.ResetLoginAttempts(ctx, req.Email); err != nil {
		logger.Warn("AuthService:Login:ResetLoginAttempts:Error:", err)
	}

	return s.issueTokens(creator.ID)
}

func (s *AuthService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, *errors.AppError) {
	blacklisted, err := s.cache.IsTokenBlacklisted(ctx, req.RefreshToken)
	if err != nil {
		logger.Error("AuthService:Refresh:IsTokenBlacklisted:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check token blacklist", err)
	}
	if blacklisted {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "token has been revoked", nil)
	}

	tokenData, err := utils.ValidateAndParseToken(req.RefreshToken)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid refresh token", err)
	}
	if tokenData.Scope != constants.ScopeTokenRefresh {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "token is not a refresh token", nil)
	}

	// Rotate: the used refresh token is revoked for its remaining lifetime.
	if err := s.cache.AddToTokenBlacklist(ctx, req.RefreshToken, time.Until(tokenData.ExpiresAt)); err != nil {
		logger.Warn("AuthService:Refresh:AddToTokenBlacklist:Error:", err)
	}

	return s.issueTokens(tokenData.UserID)
}

func (s *AuthService) Logout(ctx context.Context, accessToken string) *errors.AppError {
	tokenData, err := utils.ValidateAndParseToken(accessToken)
	if err != nil {
		return errors.NewAppError(errors.ErrUnauthorized, "invalid token", err)
	}

	if err := s.cache.AddToTokenBlacklist(ctx, accessToken, time.Until(tokenData.ExpiresAt)); err != nil {
		logger.Error("AuthService:Logout:AddToTokenBlacklist:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke token", err)
	}

	logger.Info("AuthService:Logout:Success", "creator_id", tokenData.UserID)
	return nil
}

func (s *AuthService) GetProfile(ctx context.Context, creatorID uuid.UUID) (*dto.CreatorResponse, *errors.AppError) {
	creator, err := s.repo.GetByID(ctx, creatorID)
	if err != nil {
		logger.Error("AuthService:GetProfile:GetByID:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load profile", err)
	}
	if creator == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "creator not found", nil)
	}
	return toCreatorResponse(creator), nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, creatorID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.CreatorResponse, *errors.AppError) {
	creator, err := s.repo.GetByID(ctx, creatorID)
	if err != nil {
		logger.Error("AuthService:UpdateProfile:GetByID:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load profile", err)
	}
	if creator == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "creator not found", nil)
	}

	if req.DisplayName != "" {
		creator.DisplayName = req.DisplayName
	}
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "timezone must be a valid IANA zone name", err)
		}
		creator.Timezone = req.Timezone
	}

	if err := s.repo.UpdateProfile(ctx, creator); err != nil {
		logger.Error("AuthService:UpdateProfile:Update:Error:", err)
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to update profile", err)
	}
	return toCreatorResponse(creator), nil
}

func (s *AuthService) issueTokens(creatorID uuid.UUID) (*dto.TokenResponse, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "server configuration error", nil)
	}

	access, err := utils.CreateToken(creatorID, constants.ScopeTokenAccess, time.Duration(cfg.JWT.AccessTTLMin)*time.Minute)
	if err != nil {
		logger.Error("AuthService:IssueTokens:Access:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create access token", err)
	}

	refresh, err := utils.CreateToken(creatorID, constants.ScopeTokenRefresh, time.Duration(cfg.JWT.RefreshTTLHours)*time.Hour)
	if err != nil {
		logger.Error("AuthService:IssueTokens:Refresh:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create refresh token", err)
	}

	return &dto.TokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}

// uniqueSlug derives the public agenda handle from the display name, adding a
// short random suffix on collision.
func (s *AuthService) uniqueSlug(ctx context.Context, displayName string) (string, *errors.AppError) {
	base := slug.Make(displayName)
	if base == "" {
		base = "creator"
	}

	candidate := base
	for i := 0; i < 3; i++ {
		exists, err := s.repo.SlugExists(ctx, candidate)
		if err != nil {
			logger.Error("AuthService:UniqueSlug:SlugExists:Error:", err)
			return "", errors.NewAppError(errors.ErrInternalServer, "failed to check slug", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%s", base, utils.GenerateID())
	}
	return candidate, nil
}

func toCreatorResponse(creator *entity.Creator) *dto.CreatorResponse {
	return &dto.CreatorResponse{
		ID:          creator.ID.String(),
		Email:       creator.Email,
		DisplayName: creator.DisplayName,
		Slug:        creator.Slug,
		Timezone:    creator.Timezone,
	}
}
