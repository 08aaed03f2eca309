package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Syed25794/shift-swap-ai/internal/dto"
	"github.com/Syed25794/shift-swap-ai/internal/model"
	"github.com/Syed25794/shift-swap-ai/internal/repository"
	apperrors "github.com/Syed25794/shift-swap-ai/pkg/errors"
)

// ── swap request business errors ──

var (
	ErrSwapNotFound       = errors.New("swap request not found")
	ErrShiftNotFound      = errors.New("shift not found")
	ErrNotShiftOwner      = errors.New("cannot request a swap for a shift you do not own")
	ErrSwapAccessDenied   = errors.New("not allowed to access this swap request")
	ErrManagerOnly        = errors.New("only managers can decide swap requests")
	ErrReasonRequired     = errors.New("a reason is required")
	ErrSelfVolunteer      = errors.New("cannot volunteer for your own swap request")
	ErrSwapNotAccepting   = errors.New("swap request is no longer accepting volunteers")
	ErrSwapNotMatched     = errors.New("swap request has no accepted volunteer yet")
	ErrInvalidStatus      = errors.New("unknown swap request status")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrShiftAlreadyPosted = errors.New("shift already has an active swap request")
)

// SwapService owns the swap request lifecycle: creation, volunteering,
// manager decision, and the authorization checks gating each transition.
type SwapService interface {
	Create(ctx context.Context, caller Caller, req *dto.CreateSwapRequest) (*dto.SwapRequestResponse, error)
	List(ctx context.Context, caller Caller, query *dto.ListSwapRequestsQuery) ([]dto.SwapRequestResponse, error)
	GetByID(ctx context.Context, caller Caller, id string) (*dto.SwapRequestResponse, error)
	UpdateStatus(ctx context.Context, caller Caller, id string, req *dto.UpdateSwapStatusRequest) (*dto.SwapRequestResponse, error)
	Delete(ctx context.Context, caller Caller, id string) error
	Volunteer(ctx context.Context, caller Caller, id string, req *dto.VolunteerRequest) (*dto.SwapRequestResponse, error)
	Approve(ctx context.Context, caller Caller, id string) (*dto.SwapRequestResponse, error)
	Reject(ctx context.Context, caller Caller, id string, reason string) (*dto.SwapRequestResponse, error)
	ListOpen(ctx context.Context, caller Caller) ([]dto.OpenSwapResponse, error)
	ListApprovals(ctx context.Context) ([]dto.ApprovalResponse, error)
	ApprovalHistory(ctx context.Context) ([]dto.ApprovalResponse, error)
}

type swapService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSwapService creates a SwapService.
func NewSwapService(repo *repository.Repository, logger *zap.Logger) SwapService {
	return &swapService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *swapService) Create(ctx context.Context, caller Caller, req *dto.CreateSwapRequest) (*dto.SwapRequestResponse, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, ErrReasonRequired
	}

	shift, err := s.repo.Shift.GetByID(ctx, req.ShiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("load shift failed", zap.String("shift_id", req.ShiftID), zap.Error(err))
		return nil, err
	}

	if !canRequestSwapForShift(caller, shift) {
		return nil, ErrNotShiftOwner
	}

	active, err := s.repo.SwapRequest.HasActiveForShift(ctx, shift.ShiftID)
	if err != nil {
		s.logger.Error("check active request failed", zap.String("shift_id", shift.ShiftID), zap.Error(err))
		return nil, err
	}
	if active {
		return nil, ErrShiftAlreadyPosted
	}

	// Snapshot all shift fields so later shift changes never alter the
	// terms displayed on a pending request.
	swap := &model.SwapRequest{
		UserID:    caller.ID,
		ShiftID:   shift.ShiftID,
		Date:      shift.Date,
		StartTime: shift.StartTime,
		EndTime:   shift.EndTime,
		Role:      shift.Role,
		Location:  shift.Location,
		Reason:    req.Reason,
		Status:    model.SwapStatusPending,
	}

	if err := s.repo.SwapRequest.Create(ctx, swap); err != nil {
		s.logger.Error("create swap request failed", zap.Error(err))
		return nil, err
	}

	return s.toSwapResponse(swap), nil
}

// ────────────────────── List ──────────────────────

func (s *swapService) List(ctx context.Context, caller Caller, query *dto.ListSwapRequestsQuery) ([]dto.SwapRequestResponse, error) {
	filter := repository.SwapRequestFilter{UserID: query.UserID}

	// Staff only ever see their own requests here; the open-swaps view is
	// the one window into other workers' pending requests.
	if !caller.IsManager() {
		filter.UserID = caller.ID
	}

	if query.Status != "" {
		statuses, err := parseStatusSet(query.Status)
		if err != nil {
			return nil, err
		}
		filter.Statuses = statuses
	}

	reqs, err := s.repo.SwapRequest.List(ctx, filter)
	if err != nil {
		s.logger.Error("list swap requests failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SwapRequestResponse, 0, len(reqs))
	for i := range reqs {
		result = append(result, *s.toSwapResponse(&reqs[i]))
	}
	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *swapService) GetByID(ctx context.Context, caller Caller, id string) (*dto.SwapRequestResponse, error) {
	swap, err := s.loadSwap(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccessSwapRequest(caller, swap) {
		return nil, ErrSwapAccessDenied
	}
	return s.toSwapResponse(swap), nil
}

// ────────────────────── UpdateStatus ──────────────────────

// UpdateStatus applies a status value directly. Only the two decision
// transitions are reachable this way: matching happens exclusively through
// Volunteer, and nothing moves backward.
func (s *swapService) UpdateStatus(ctx context.Context, caller Caller, id string, req *dto.UpdateSwapStatusRequest) (*dto.SwapRequestResponse, error) {
	if !model.IsValidSwapStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	swap, err := s.loadSwap(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccessSwapRequest(caller, swap) {
		return nil, ErrSwapAccessDenied
	}

	switch req.Status {
	case model.SwapStatusApproved:
		return s.decide(ctx, caller, swap, model.SwapStatusApproved, "")
	case model.SwapStatusRejected:
		return s.decide(ctx, caller, swap, model.SwapStatusRejected, req.Reason)
	default:
		return nil, ErrInvalidTransition
	}
}

// ────────────────────── Delete ──────────────────────

func (s *swapService) Delete(ctx context.Context, caller Caller, id string) error {
	swap, err := s.loadSwap(ctx, id)
	if err != nil {
		return err
	}
	if !canAccessSwapRequest(caller, swap) {
		return ErrSwapAccessDenied
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("begin transaction failed", zap.Error(err))
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	if err := txRepo.Volunteer.DeleteBySwapRequest(ctx, swap.SwapRequestID); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("delete volunteers failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := txRepo.SwapRequest.Delete(ctx, swap.SwapRequestID); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("delete swap request failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("commit transaction failed", zap.Error(err))
			return err
		}
	}

	return nil
}

// ────────────────────── Volunteer ──────────────────────

func (s *swapService) Volunteer(ctx context.Context, caller Caller, id string, req *dto.VolunteerRequest) (*dto.SwapRequestResponse, error) {
	swap, err := s.loadSwap(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canVolunteerForSwap(caller, swap) {
		return nil, ErrSelfVolunteer
	}
	if swap.Status != model.SwapStatusPending {
		return nil, ErrSwapNotAccepting
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("begin transaction failed", zap.Error(err))
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	// The conditional update is the single point of race protection: two
	// concurrent volunteers both observing "pending" resolve here, and the
	// loser gets ErrOptimisticLock instead of a second match.
	if err := txRepo.SwapRequest.MarkMatched(ctx, swap.SwapRequestID); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		if errors.Is(err, apperrors.ErrOptimisticLock) {
			return nil, ErrSwapNotAccepting
		}
		s.logger.Error("mark matched failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	volunteer := &model.Volunteer{
		SwapRequestID: swap.SwapRequestID,
		UserID:        caller.ID,
		Name:          caller.Name,
		Role:          caller.Role,
		Note:          req.Note,
	}
	if err := txRepo.Volunteer.Create(ctx, volunteer); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("create volunteer failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("commit transaction failed", zap.Error(err))
			return nil, err
		}
	}

	updated, err := s.loadSwap(ctx, swap.SwapRequestID)
	if err != nil {
		return nil, err
	}
	return s.toSwapResponse(updated), nil
}

// ────────────────────── Approve / Reject ──────────────────────

func (s *swapService) Approve(ctx context.Context, caller Caller, id string) (*dto.SwapRequestResponse, error) {
	swap, err := s.loadSwap(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decide(ctx, caller, swap, model.SwapStatusApproved, "")
}

func (s *swapService) Reject(ctx context.Context, caller Caller, id string, reason string) (*dto.SwapRequestResponse, error) {
	swap, err := s.loadSwap(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decide(ctx, caller, swap, model.SwapStatusRejected, reason)
}

// decide finalizes a matched request. The role gate runs before the state
// check so a non-manager always sees Forbidden, whatever the status.
func (s *swapService) decide(ctx context.Context, caller Caller, swap *model.SwapRequest, status, reason string) (*dto.SwapRequestResponse, error) {
	if !canDecideSwap(caller) {
		return nil, ErrManagerOnly
	}
	if swap.Status != model.SwapStatusMatched {
		return nil, ErrSwapNotMatched
	}
	if status == model.SwapStatusRejected && strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}

	if err := s.repo.SwapRequest.Decide(ctx, swap.SwapRequestID, status, reason); err != nil {
		if errors.Is(err, apperrors.ErrOptimisticLock) {
			// a concurrent decision won; the request is no longer matched
			return nil, ErrSwapNotMatched
		}
		s.logger.Error("decide swap request failed",
			zap.String("id", swap.SwapRequestID),
			zap.String("status", status),
			zap.Error(err))
		return nil, err
	}

	updated, err := s.loadSwap(ctx, swap.SwapRequestID)
	if err != nil {
		return nil, err
	}
	return s.toSwapResponse(updated), nil
}

// ────────────────────── ListOpen ──────────────────────

func (s *swapService) ListOpen(ctx context.Context, caller Caller) ([]dto.OpenSwapResponse, error) {
	reqs, err := s.repo.SwapRequest.List(ctx, repository.SwapRequestFilter{
		Statuses:      []string{model.SwapStatusPending},
		ExcludeUserID: caller.ID,
		WithRequester: true,
	})
	if err != nil {
		s.logger.Error("list open swaps failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.OpenSwapResponse, 0, len(reqs))
	for i := range reqs {
		item := dto.OpenSwapResponse{SwapRequestResponse: *s.toSwapResponse(&reqs[i])}
		if reqs[i].Requester != nil {
			item.RequesterName = reqs[i].Requester.Name
			item.RequesterRole = reqs[i].Requester.Role
		}
		result = append(result, item)
	}
	return result, nil
}

// ────────────────────── Approvals ──────────────────────

func (s *swapService) ListApprovals(ctx context.Context) ([]dto.ApprovalResponse, error) {
	return s.listApprovalView(ctx, []string{model.SwapStatusMatched})
}

func (s *swapService) ApprovalHistory(ctx context.Context) ([]dto.ApprovalResponse, error) {
	return s.listApprovalView(ctx, []string{model.SwapStatusApproved, model.SwapStatusRejected})
}

func (s *swapService) listApprovalView(ctx context.Context, statuses []string) ([]dto.ApprovalResponse, error) {
	reqs, err := s.repo.SwapRequest.List(ctx, repository.SwapRequestFilter{
		Statuses:      statuses,
		WithRequester: true,
	})
	if err != nil {
		s.logger.Error("list approvals failed", zap.Strings("statuses", statuses), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ApprovalResponse, 0, len(reqs))
	for i := range reqs {
		item := dto.ApprovalResponse{
			SwapRequestResponse: *s.toSwapResponse(&reqs[i]),
			VolunteerName:       "No volunteer yet",
			VolunteerRole:       "N/A",
		}
		if reqs[i].Requester != nil {
			item.RequesterName = reqs[i].Requester.Name
			item.RequesterRole = reqs[i].Requester.Role
		}
		if len(reqs[i].Volunteers) > 0 {
			item.VolunteerName = reqs[i].Volunteers[0].Name
			item.VolunteerRole = reqs[i].Volunteers[0].Role
		}
		result = append(result, item)
	}
	return result, nil
}

// ── helpers ──

func (s *swapService) loadSwap(ctx context.Context, id string) (*model.SwapRequest, error) {
	swap, err := s.repo.SwapRequest.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwapNotFound
		}
		s.logger.Error("load swap request failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return swap, nil
}

// parseStatusSet splits a comma-separated status filter and validates each
// element.
func parseStatusSet(raw string) ([]string, error) {
	parts := strings.Split(raw, ",")
	statuses := make([]string, 0, len(parts))
	for _, p := range parts {
		status := strings.TrimSpace(p)
		if status == "" {
			continue
		}
		if !model.IsValidSwapStatus(status) {
			return nil, ErrInvalidStatus
		}
		statuses = append(statuses, status)
	}
	if len(statuses) == 0 {
		return nil, ErrInvalidStatus
	}
	return statuses, nil
}

func (s *swapService) toSwapResponse(swap *model.SwapRequest) *dto.SwapRequestResponse {
	resp := &dto.SwapRequestResponse{
		ID:              swap.SwapRequestID,
		UserID:          swap.UserID,
		ShiftID:         swap.ShiftID,
		Date:            swap.Date.Format("2006-01-02"),
		StartTime:       swap.StartTime,
		EndTime:         swap.EndTime,
		Role:            swap.Role,
		Location:        swap.Location,
		Reason:          swap.Reason,
		Status:          swap.Status,
		RejectionReason: swap.RejectionReason,
		CreatedAt:       swap.CreatedAt.Format(time.RFC3339),
		Volunteers:      make([]dto.VolunteerResponse, 0, len(swap.Volunteers)),
	}
	if swap.MatchedAt != nil {
		resp.MatchedAt = swap.MatchedAt.Format(time.RFC3339)
	}
	if swap.DecidedAt != nil {
		resp.DecidedAt = swap.DecidedAt.Format(time.RFC3339)
	}
	for _, v := range swap.Volunteers {
		resp.Volunteers = append(resp.Volunteers, dto.VolunteerResponse{
			ID:        v.VolunteerID,
			UserID:    v.UserID,
			Name:      v.Name,
			Role:      v.Role,
			Note:      v.Note,
			CreatedAt: v.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
