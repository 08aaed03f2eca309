package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Syed25794/shift-swap-ai/internal/dto"
	"github.com/Syed25794/shift-swap-ai/internal/model"
	"github.com/Syed25794/shift-swap-ai/internal/repository"
)

var (
	ErrShiftAccessDenied = errors.New("not allowed to access this shift")
	ErrShiftDateInvalid  = errors.New("invalid shift date")
	ErrShiftTimeInvalid  = errors.New("shift end time must be after start time")
)

// ShiftService handles the shift record store operations. Shifts are
// write-once: created here, then only referenced by swap requests.
type ShiftService interface {
	Create(ctx context.Context, caller Caller, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error)
	GetByID(ctx context.Context, caller Caller, id string) (*dto.ShiftResponse, error)
	ListMine(ctx context.Context, caller Caller, query *dto.ListShiftsQuery) ([]dto.ShiftResponse, error)
}

type shiftService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShiftService creates a ShiftService.
func NewShiftService(repo *repository.Repository, logger *zap.Logger) ShiftService {
	return &shiftService{repo: repo, logger: logger}
}

func (s *shiftService) Create(ctx context.Context, caller Caller, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrShiftDateInvalid
	}
	if req.EndTime <= req.StartTime {
		return nil, ErrShiftTimeInvalid
	}

	shift := &model.Shift{
		UserID:    caller.ID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Role:      req.Role,
		Location:  req.Location,
	}

	if err := s.repo.Shift.Create(ctx, shift); err != nil {
		s.logger.Error("create shift failed", zap.Error(err))
		return nil, err
	}

	return toShiftResponse(shift, false), nil
}

func (s *shiftService) GetByID(ctx context.Context, caller Caller, id string) (*dto.ShiftResponse, error) {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("load shift failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if !canViewShift(caller, shift) {
		return nil, ErrShiftAccessDenied
	}

	active, err := s.repo.SwapRequest.HasActiveForShift(ctx, shift.ShiftID)
	if err != nil {
		s.logger.Error("check active request failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toShiftResponse(shift, active), nil
}

// ListMine returns the caller's shifts; with Swappable set, only shifts that
// could still be posted for swapping (no pending or matched request).
func (s *shiftService) ListMine(ctx context.Context, caller Caller, query *dto.ListShiftsQuery) ([]dto.ShiftResponse, error) {
	shifts, err := s.repo.Shift.ListByOwner(ctx, caller.ID)
	if err != nil {
		s.logger.Error("list shifts failed", zap.String("user_id", caller.ID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		active := false
		for _, req := range shifts[i].SwapRequests {
			if model.IsActiveSwapStatus(req.Status) {
				active = true
				break
			}
		}
		if query.Swappable && active {
			continue
		}
		result = append(result, *toShiftResponse(&shifts[i], active))
	}
	return result, nil
}

func toShiftResponse(shift *model.Shift, hasActiveRequest bool) *dto.ShiftResponse {
	return &dto.ShiftResponse{
		ID:                   shift.ShiftID,
		UserID:               shift.UserID,
		Date:                 shift.Date.Format("2006-01-02"),
		StartTime:            shift.StartTime,
		EndTime:              shift.EndTime,
		Role:                 shift.Role,
		Location:             shift.Location,
		CreatedAt:            shift.CreatedAt.Format(time.RFC3339),
		HasActiveSwapRequest: hasActiveRequest,
	}
}
