package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Syed25794/shift-swap-ai/internal/model"
	apperrors "github.com/Syed25794/shift-swap-ai/pkg/errors"
)

// SwapRequestFilter narrows List results. Zero values mean "no filter".
type SwapRequestFilter struct {
	UserID        string
	ExcludeUserID string
	Statuses      []string
	WithRequester bool
}

// SwapRequestRepository is the swap request data access interface.
type SwapRequestRepository interface {
	Create(ctx context.Context, req *model.SwapRequest) error
	GetByID(ctx context.Context, id string) (*model.SwapRequest, error)
	List(ctx context.Context, filter SwapRequestFilter) ([]model.SwapRequest, error)
	// MarkMatched flips status pending→matched conditioned on the row still
	// being pending. Returns pkg/errors.ErrOptimisticLock when the guard
	// matches zero rows.
	MarkMatched(ctx context.Context, id string) error
	// Decide finalizes a matched request as approved or rejected and stamps
	// decided_at, conditioned on the row still being matched.
	Decide(ctx context.Context, id, status, rejectionReason string) error
	Delete(ctx context.Context, id string) error
	HasActiveForShift(ctx context.Context, shiftID string) (bool, error)
}

type swapRequestRepo struct {
	db *gorm.DB
}

// NewSwapRequestRepo creates a SwapRequestRepository.
func NewSwapRequestRepo(db *gorm.DB) SwapRequestRepository {
	return &swapRequestRepo{db: db}
}

func (r *swapRequestRepo) Create(ctx context.Context, req *model.SwapRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *swapRequestRepo) GetByID(ctx context.Context, id string) (*model.SwapRequest, error) {
	var req model.SwapRequest
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Volunteers").
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *swapRequestRepo) List(ctx context.Context, filter SwapRequestFilter) ([]model.SwapRequest, error) {
	q := r.db.WithContext(ctx).Preload("Volunteers")

	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.ExcludeUserID != "" {
		q = q.Where("user_id <> ?", filter.ExcludeUserID)
	}
	if len(filter.Statuses) > 0 {
		q = q.Where("status IN ?", filter.Statuses)
	}
	if filter.WithRequester {
		q = q.Preload("Requester")
	}

	var reqs []model.SwapRequest
	err := q.Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

func (r *swapRequestRepo) MarkMatched(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&model.SwapRequest{}).
		Where("id = ? AND status = ?", id, model.SwapStatusPending).
		Updates(map[string]interface{}{
			"status":     model.SwapStatusMatched,
			"matched_at": gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrOptimisticLock
	}
	return nil
}

func (r *swapRequestRepo) Decide(ctx context.Context, id, status, rejectionReason string) error {
	res := r.db.WithContext(ctx).
		Model(&model.SwapRequest{}).
		Where("id = ? AND status = ?", id, model.SwapStatusMatched).
		Updates(map[string]interface{}{
			"status":           status,
			"rejection_reason": rejectionReason,
			"decided_at":       gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrOptimisticLock
	}
	return nil
}

func (r *swapRequestRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SwapRequest{}).Error
}

func (r *swapRequestRepo) HasActiveForShift(ctx context.Context, shiftID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SwapRequest{}).
		Where("shift_id = ? AND status IN ?", shiftID,
			[]string{model.SwapStatusPending, model.SwapStatusMatched}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
