package handler

import "github.com/Syed25794/shift-swap-ai/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Shift    *ShiftHandler
	Swap     *SwapHandler
	Approval *ApprovalHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth),
		User:     NewUserHandler(svc.User),
		Shift:    NewShiftHandler(svc.Shift),
		Swap:     NewSwapHandler(svc.Swap),
		Approval: NewApprovalHandler(svc.Swap),
	}
}
