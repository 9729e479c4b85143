package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"crewhub/core/cache"
	"crewhub/core/config"
	"crewhub/core/constants"
	"crewhub/core/errors"
	"crewhub/core/logger"
	"crewhub/core/utils"
	"crewhub/modules/auth/dto"
	"crewhub/modules/auth/entity"
	"crewhub/modules/auth/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type AuthService struct {
	repo  repository.UserRepositoryInterface
	cache cache.CacheInterface
}

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError)
	GoogleLoginURL(ctx context.Context) (*dto.GoogleLoginResponse, *errors.AppError)
	GoogleCallback(ctx context.Context, state string, code string) (*dto.TokenResponse, *errors.AppError)
}

func NewAuthService(repo repository.UserRepositoryInterface, c cache.CacheInterface) AuthServiceInterface {
	return &AuthService{repo: repo, cache: c}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "check existing user failed", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "email already registered", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "hash password failed", err)
	}
	hashStr := string(hash)

	user := &entity.User{
		Email:        email,
		PasswordHash: &hashStr,
		Name:         req.Name,
		Provider:     entity.ProviderLocal,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create user failed", err)
	}

	return s.issueTokens(user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user == nil || user.PasswordHash == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	return s.issueTokens(user)
}

func (s *AuthService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	blacklisted, err := s.cache.IsTokenBlacklisted(ctx, req.RefreshToken)
	if err != nil {
		logger.Error("AuthService:Refresh:IsTokenBlacklisted", err)
	} else if blacklisted {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "token is blacklisted", nil)
	}

	tokenData, err := utils.ValidateAndParseToken(req.RefreshToken)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrTokenExpired, "invalid refresh token", err)
	}
	if tokenData.TokenType != utils.TokenTypeRefresh {
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "not a refresh token", nil)
	}

	user, err := s.repo.GetByID(ctx, tokenData.UserID)
	if err != nil || user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", err)
	}

	// Rotate: the old refresh token is blacklisted for its remaining life.
	if err := s.cache.BlacklistToken(ctx, req.RefreshToken); err != nil {
		logger.Error("AuthService:Refresh:BlacklistToken", err)
	}

	return s.issueTokens(user)
}

func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.cache.BlacklistToken(ctx, token); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to blacklist token", err)
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *AuthService) googleOAuthConfig() *oauth2.Config {
	cfg := config.Get().Google
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

func (s *AuthService) GoogleLoginURL(ctx context.Context) (*dto.GoogleLoginResponse, *errors.AppError) {
	state := utils.GenerateRandomString(32)

	// The state is kept server-side so the callback can verify it.
	if err := s.cache.Set(ctx, constants.RedisKeyOAuthState+state, "1", constants.OAuthStateTTL); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to save oauth state", err)
	}

	url := s.googleOAuthConfig().AuthCodeURL(state, oauth2.AccessTypeOffline)
	return &dto.GoogleLoginResponse{AuthURL: url}, nil
}

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (s *AuthService) GoogleCallback(ctx context.Context, state string, code string) (*dto.TokenResponse, *errors.AppError) {
	saved, err := s.cache.Get(ctx, constants.RedisKeyOAuthState+state)
	if err != nil || saved == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid oauth state", err)
	}
	if err := s.cache.Delete(ctx, constants.RedisKeyOAuthState+state); err != nil {
		logger.Error("AuthService:GoogleCallback:DeleteState", err)
	}

	oauthCfg := s.googleOAuthConfig()
	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "code exchange failed", err)
	}

	client := oauthCfg.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "fetch userinfo failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAppError(errors.ErrInternalServer, "userinfo request failed",
			&errors.StatusError{Status: resp.StatusCode, Msg: "google userinfo"})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "read userinfo failed", err)
	}

	var info googleUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "parse userinfo failed", err)
	}

	user, err := s.repo.GetByProvider(ctx, entity.ProviderGoogle, info.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user == nil {
		user = &entity.User{
			Email:      strings.ToLower(info.Email),
			Name:       info.Name,
			Provider:   entity.ProviderGoogle,
			ProviderID: &info.ID,
		}
		if info.Picture != "" {
			user.AvatarURL = &info.Picture
		}
		if err := s.repo.Create(ctx, user); err != nil {
			return nil, errors.NewAppError(errors.ErrCreateFailed, "create user failed", err)
		}
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *entity.User) (*dto.TokenResponse, *errors.AppError) {
	accessToken, err := utils.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "generate access token failed", err)
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "generate refresh token failed", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         toUserResponse(user),
	}, nil
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		Provider:  user.Provider,
		CreatedAt: user.CreatedAt,
	}
}
