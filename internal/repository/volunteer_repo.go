package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Syed25794/shift-swap-ai/internal/model"
)

// VolunteerRepository is the volunteer data access interface.
type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *model.Volunteer) error
	ListBySwapRequest(ctx context.Context, swapRequestID string) ([]model.Volunteer, error)
	DeleteBySwapRequest(ctx context.Context, swapRequestID string) error
}

type volunteerRepo struct {
	db *gorm.DB
}

// NewVolunteerRepo creates a VolunteerRepository.
func NewVolunteerRepo(db *gorm.DB) VolunteerRepository {
	return &volunteerRepo{db: db}
}

func (r *volunteerRepo) Create(ctx context.Context, volunteer *model.Volunteer) error {
	return r.db.WithContext(ctx).Create(volunteer).Error
}

func (r *volunteerRepo) ListBySwapRequest(ctx context.Context, swapRequestID string) ([]model.Volunteer, error) {
	var volunteers []model.Volunteer
	err := r.db.WithContext(ctx).
		Where("swap_request_id = ?", swapRequestID).
		Order("created_at ASC").
		Find(&volunteers).Error
	return volunteers, err
}

func (r *volunteerRepo) DeleteBySwapRequest(ctx context.Context, swapRequestID string) error {
	return r.db.WithContext(ctx).
		Where("swap_request_id = ?", swapRequestID).
		Delete(&model.Volunteer{}).Error
}
