package service

import (
	"context"
	"time"

	"elearn_backend/internal/config"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"
	"elearn_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ログイン失敗の抑制。閾値を超えたアカウント名はロック時間だけ拒否する。
const loginFailWindow = 15 * time.Minute

type AuthService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Redis:    rdb,
		Cfg:      cfg,
	}
}

// Login 資格情報を検証して JWT を発行する。失敗回数は Redis で数え、
// 閾値超過で一時ロックする。
func (s *AuthService) Login(username, password string) (string, error) {
	ctx := context.Background()
	key := util.LoginFailKeyPrefix + username

	if s.Redis != nil {
		fails, err := s.Redis.Get(ctx, key).Int()
		if err == nil && fails >= util.LoginFailLimit {
			return "", util.ErrAccountLocked
		}
	}

	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		s.recordFailure(ctx, key)
		return "", util.ErrInvalidCredentials
	}

	if !user.Active {
		return "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.recordFailure(ctx, key)
		return "", util.ErrInvalidCredentials
	}

	if s.Redis != nil {
		s.Redis.Del(ctx, key)
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		logger.Log.Warn("failed to update last login", zap.Uint("userId", user.ID), zap.Error(err))
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) recordFailure(ctx context.Context, key string) {
	if s.Redis == nil {
		return
	}
	n, err := s.Redis.Incr(ctx, key).Result()
	if err != nil {
		return
	}
	if n == 1 {
		s.Redis.Expire(ctx, key, loginFailWindow)
	}
}
