package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Syed25794/shift-swap-ai/internal/model"
	"github.com/Syed25794/shift-swap-ai/internal/repository"
	apperrors "github.com/Syed25794/shift-swap-ai/pkg/errors"
)

// In-memory repositories backed by a shared store. The swap request mock
// performs the same compare-and-set guards as the SQL implementation so the
// concurrency paths are exercised for real.

type mockStore struct {
	mu         sync.Mutex
	users      map[string]model.User
	shifts     map[string]model.Shift
	swaps      map[string]model.SwapRequest
	volunteers map[string]model.Volunteer
}

func newMockStore() *mockStore {
	return &mockStore{
		users:      make(map[string]model.User),
		shifts:     make(map[string]model.Shift),
		swaps:      make(map[string]model.SwapRequest),
		volunteers: make(map[string]model.Volunteer),
	}
}

// newMockRepository builds a repository aggregate over an in-memory store.
// The aggregate has no live *gorm.DB, so BeginTx yields a nil transaction
// and WithTx is a no-op.
func newMockRepository(store *mockStore) *repository.Repository {
	return &repository.Repository{
		User:        &mockUserRepo{store: store},
		Shift:       &mockShiftRepo{store: store},
		SwapRequest: &mockSwapRequestRepo{store: store},
		Volunteer:   &mockVolunteerRepo{store: store},
	}
}

// ── users ──

type mockUserRepo struct {
	store *mockStore
}

func (r *mockUserRepo) Create(_ context.Context, user *model.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.store.users[user.UserID] = *user
	return nil
}

func (r *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) Update(_ context.Context, user *model.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[user.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	user.UpdatedAt = time.Now()
	r.store.users[user.UserID] = *user
	return nil
}

// ── shifts ──

type mockShiftRepo struct {
	store *mockStore
}

func (r *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if shift.ShiftID == "" {
		shift.ShiftID = uuid.NewString()
	}
	shift.CreatedAt = time.Now()
	r.store.shifts[shift.ShiftID] = *shift
	return nil
}

func (r *mockShiftRepo) GetByID(_ context.Context, id string) (*model.Shift, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	shift, ok := r.store.shifts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &shift, nil
}

func (r *mockShiftRepo) ListByOwner(_ context.Context, userID string) ([]model.Shift, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var shifts []model.Shift
	for _, shift := range r.store.shifts {
		if shift.UserID != userID {
			continue
		}
		s := shift
		for _, swap := range r.store.swaps {
			if swap.ShiftID == s.ShiftID {
				s.SwapRequests = append(s.SwapRequests, swap)
			}
		}
		shifts = append(shifts, s)
	}
	sort.Slice(shifts, func(i, j int) bool {
		if !shifts[i].Date.Equal(shifts[j].Date) {
			return shifts[i].Date.Before(shifts[j].Date)
		}
		return shifts[i].StartTime < shifts[j].StartTime
	})
	return shifts, nil
}

// ── swap requests ──

type mockSwapRequestRepo struct {
	store *mockStore
}

func (r *mockSwapRequestRepo) Create(_ context.Context, req *model.SwapRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if req.SwapRequestID == "" {
		req.SwapRequestID = uuid.NewString()
	}
	req.CreatedAt = time.Now()
	r.store.swaps[req.SwapRequestID] = *req
	return nil
}

func (r *mockSwapRequestRepo) GetByID(_ context.Context, id string) (*model.SwapRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	req, ok := r.store.swaps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	req.Volunteers = r.volunteersFor(id)
	return &req, nil
}

func (r *mockSwapRequestRepo) List(_ context.Context, filter repository.SwapRequestFilter) ([]model.SwapRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var reqs []model.SwapRequest
	for _, req := range r.store.swaps {
		if filter.UserID != "" && req.UserID != filter.UserID {
			continue
		}
		if filter.ExcludeUserID != "" && req.UserID == filter.ExcludeUserID {
			continue
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, req.Status) {
			continue
		}
		item := req
		item.Volunteers = r.volunteersFor(item.SwapRequestID)
		if filter.WithRequester {
			if user, ok := r.store.users[item.UserID]; ok {
				u := user
				item.Requester = &u
			}
		}
		reqs = append(reqs, item)
	}
	sort.Slice(reqs, func(i, j int) bool {
		return reqs[i].CreatedAt.After(reqs[j].CreatedAt)
	})
	return reqs, nil
}

func (r *mockSwapRequestRepo) MarkMatched(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	req, ok := r.store.swaps[id]
	if !ok || req.Status != model.SwapStatusPending {
		return apperrors.ErrOptimisticLock
	}
	now := time.Now()
	req.Status = model.SwapStatusMatched
	req.MatchedAt = &now
	r.store.swaps[id] = req
	return nil
}

func (r *mockSwapRequestRepo) Decide(_ context.Context, id, status, rejectionReason string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	req, ok := r.store.swaps[id]
	if !ok || req.Status != model.SwapStatusMatched {
		return apperrors.ErrOptimisticLock
	}
	now := time.Now()
	req.Status = status
	req.RejectionReason = rejectionReason
	req.DecidedAt = &now
	r.store.swaps[id] = req
	return nil
}

func (r *mockSwapRequestRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.swaps, id)
	return nil
}

func (r *mockSwapRequestRepo) HasActiveForShift(_ context.Context, shiftID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, req := range r.store.swaps {
		if req.ShiftID == shiftID && model.IsActiveSwapStatus(req.Status) {
			return true, nil
		}
	}
	return false, nil
}

// volunteersFor reads the volunteer rows for a request. Caller holds the
// store lock.
func (r *mockSwapRequestRepo) volunteersFor(swapRequestID string) []model.Volunteer {
	var vols []model.Volunteer
	for _, v := range r.store.volunteers {
		if v.SwapRequestID == swapRequestID {
			vols = append(vols, v)
		}
	}
	sort.Slice(vols, func(i, j int) bool {
		return vols[i].CreatedAt.Before(vols[j].CreatedAt)
	})
	return vols
}

func containsStatus(statuses []string, status string) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

// ── volunteers ──

type mockVolunteerRepo struct {
	store *mockStore
}

func (r *mockVolunteerRepo) Create(_ context.Context, volunteer *model.Volunteer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if volunteer.VolunteerID == "" {
		volunteer.VolunteerID = uuid.NewString()
	}
	volunteer.CreatedAt = time.Now()
	r.store.volunteers[volunteer.VolunteerID] = *volunteer
	return nil
}

func (r *mockVolunteerRepo) ListBySwapRequest(_ context.Context, swapRequestID string) ([]model.Volunteer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var vols []model.Volunteer
	for _, v := range r.store.volunteers {
		if v.SwapRequestID == swapRequestID {
			vols = append(vols, v)
		}
	}
	sort.Slice(vols, func(i, j int) bool {
		return vols[i].CreatedAt.Before(vols[j].CreatedAt)
	})
	return vols, nil
}

func (r *mockVolunteerRepo) DeleteBySwapRequest(_ context.Context, swapRequestID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, v := range r.store.volunteers {
		if v.SwapRequestID == swapRequestID {
			delete(r.store.volunteers, id)
		}
	}
	return nil
}
