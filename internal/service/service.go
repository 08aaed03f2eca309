package service

import (
	"go.uber.org/zap"

	"github.com/Syed25794/shift-swap-ai/config"
	"github.com/Syed25794/shift-swap-ai/internal/model"
	"github.com/Syed25794/shift-swap-ai/internal/repository"
	"github.com/Syed25794/shift-swap-ai/pkg/jwt"
	"github.com/Syed25794/shift-swap-ai/pkg/redis"
)

// Caller is the verified identity attached to every authenticated operation,
// extracted from the access token by the auth middleware.
type Caller struct {
	ID   string
	Name string
	Role string
}

// IsManager reports whether the caller holds the manager role.
func (c Caller) IsManager() bool { return c.Role == model.RoleManager }

// Service aggregates all services.
type Service struct {
	Auth  AuthService
	User  UserService
	Shift ShiftService
	Swap  SwapService
}

// NewService creates the service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:  NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:  NewUserService(repo, logger),
		Shift: NewShiftService(repo, logger),
		Swap:  NewSwapService(repo, logger),
	}
}
