package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Syed25794/shift-swap-ai/internal/model"
)

// ShiftRepository is the shift data access interface. Shifts are immutable
// once created, so there is no update path.
type ShiftRepository interface {
	Create(ctx context.Context, shift *model.Shift) error
	GetByID(ctx context.Context, id string) (*model.Shift, error)
	ListByOwner(ctx context.Context, userID string) ([]model.Shift, error)
}

type shiftRepo struct {
	db *gorm.DB
}

// NewShiftRepo creates a ShiftRepository.
func NewShiftRepo(db *gorm.DB) ShiftRepository {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) Create(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepo) GetByID(ctx context.Context, id string) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// ListByOwner returns all shifts owned by userID with their swap requests
// preloaded, ordered by date.
func (r *shiftRepo) ListByOwner(ctx context.Context, userID string) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("SwapRequests").
		Order("date ASC, start_time ASC").
		Find(&shifts).Error
	return shifts, err
}
