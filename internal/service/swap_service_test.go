package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Syed25794/shift-swap-ai/internal/dto"
	"github.com/Syed25794/shift-swap-ai/internal/model"
	"github.com/Syed25794/shift-swap-ai/internal/repository"
)

type swapTestEnv struct {
	store  *mockStore
	repo   *repository.Repository
	swaps  SwapService
	shifts ShiftService

	alice   Caller // staff, shift owner
	bob     Caller // staff, volunteer
	carol   Caller // staff, second volunteer
	manager Caller
}

func newSwapTestEnv(t *testing.T) *swapTestEnv {
	t.Helper()
	store := newMockStore()
	repo := newMockRepository(store)
	logger := zap.NewNop()

	env := &swapTestEnv{
		store:  store,
		repo:   repo,
		swaps:  NewSwapService(repo, logger),
		shifts: NewShiftService(repo, logger),
	}
	env.alice = env.seedUser(t, "Alice", model.RoleStaff)
	env.bob = env.seedUser(t, "Bob", model.RoleStaff)
	env.carol = env.seedUser(t, "Carol", model.RoleStaff)
	env.manager = env.seedUser(t, "Morgan", model.RoleManager)
	return env
}

func (e *swapTestEnv) seedUser(t *testing.T, name, role string) Caller {
	t.Helper()
	user := &model.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	if err := e.repo.User.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return Caller{ID: user.UserID, Name: user.Name, Role: user.Role}
}

func (e *swapTestEnv) seedShift(t *testing.T, owner Caller) *model.Shift {
	t.Helper()
	shift := &model.Shift{
		UserID:    owner.ID,
		Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "17:00",
		Role:      "Cashier",
		Location:  "Main Floor",
	}
	if err := e.repo.Shift.Create(context.Background(), shift); err != nil {
		t.Fatalf("seed shift: %v", err)
	}
	return shift
}

func (e *swapTestEnv) createSwap(t *testing.T, caller Caller, shiftID, reason string) *dto.SwapRequestResponse {
	t.Helper()
	resp, err := e.swaps.Create(context.Background(), caller, &dto.CreateSwapRequest{
		ShiftID: shiftID,
		Reason:  reason,
	})
	if err != nil {
		t.Fatalf("create swap request: %v", err)
	}
	return resp
}

// ────────────────────── creation ──────────────────────

func TestCreateSwapRequest(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)

	resp := env.createSwap(t, env.alice, shift.ShiftID, "doctor appointment")

	if resp.Status != model.SwapStatusPending {
		t.Errorf("status = %q, want %q", resp.Status, model.SwapStatusPending)
	}
	if resp.Date != "2025-06-01" || resp.StartTime != "09:00" || resp.EndTime != "17:00" {
		t.Errorf("shift snapshot not carried: date=%q start=%q end=%q", resp.Date, resp.StartTime, resp.EndTime)
	}
	if resp.Role != "Cashier" || resp.Location != "Main Floor" {
		t.Errorf("shift snapshot not carried: role=%q location=%q", resp.Role, resp.Location)
	}
	if len(resp.Volunteers) != 0 {
		t.Errorf("new request has %d volunteers, want 0", len(resp.Volunteers))
	}
}

func TestCreateSwapRequestNotOwner(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)

	_, err := env.swaps.Create(context.Background(), env.bob, &dto.CreateSwapRequest{
		ShiftID: shift.ShiftID,
		Reason:  "I want this off",
	})
	if !errors.Is(err, ErrNotShiftOwner) {
		t.Fatalf("err = %v, want ErrNotShiftOwner", err)
	}
}

func TestCreateSwapRequestMissingShift(t *testing.T) {
	env := newSwapTestEnv(t)

	_, err := env.swaps.Create(context.Background(), env.alice, &dto.CreateSwapRequest{
		ShiftID: uuid.NewString(),
		Reason:  "anything",
	})
	if !errors.Is(err, ErrShiftNotFound) {
		t.Fatalf("err = %v, want ErrShiftNotFound", err)
	}
}

func TestCreateSwapRequestBlankReason(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)

	_, err := env.swaps.Create(context.Background(), env.alice, &dto.CreateSwapRequest{
		ShiftID: shift.ShiftID,
		Reason:  "   ",
	})
	if !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("err = %v, want ErrReasonRequired", err)
	}
}

func TestCreateSwapRequestShiftAlreadyPosted(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)
	env.createSwap(t, env.alice, shift.ShiftID, "first request")

	_, err := env.swaps.Create(context.Background(), env.alice, &dto.CreateSwapRequest{
		ShiftID: shift.ShiftID,
		Reason:  "second request",
	})
	if !errors.Is(err, ErrShiftAlreadyPosted) {
		t.Fatalf("err = %v, want ErrShiftAlreadyPosted", err)
	}
}

// ────────────────────── listing & access ──────────────────────

func TestListCoercesStaffToOwnRequests(t *testing.T) {
	env := newSwapTestEnv(t)
	aliceShift := env.seedShift(t, env.alice)
	bobShift := env.seedShift(t, env.bob)
	env.createSwap(t, env.alice, aliceShift.ShiftID, "appointment")
	env.createSwap(t, env.bob, bobShift.ShiftID, "family matter")

	// Staff asking for someone else's requests still get only their own.
	got, err := env.swaps.List(context.Background(), env.alice, &dto.ListSwapRequestsQuery{UserID: env.bob.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].UserID != env.alice.ID {
		t.Fatalf("staff list leaked other users' requests: %+v", got)
	}

	// Managers see everything.
	all, err := env.swaps.List(context.Background(), env.manager, &dto.ListSwapRequestsQuery{})
	if err != nil {
		t.Fatalf("manager list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("manager list returned %d requests, want 2", len(all))
	}
}

func TestListStatusFilter(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)
	created := env.createSwap(t, env.alice, shift.ShiftID, "appointment")

	got, err := env.swaps.List(context.Background(), env.manager, &dto.ListSwapRequestsQuery{
		Status: "pending, matched",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != created.ID {
		t.Fatalf("status filter missed the pending request: %+v", got)
	}

	empty, err := env.swaps.List(context.Background(), env.manager, &dto.ListSwapRequestsQuery{
		Status: "approved,rejected",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("terminal filter returned %d requests, want 0", len(empty))
	}

	if _, err := env.swaps.List(context.Background(), env.manager, &dto.ListSwapRequestsQuery{
		Status: "pending,bogus",
	}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestGetByIDAccess(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)
	created := env.createSwap(t, env.alice, shift.ShiftID, "appointment")

	if _, err := env.swaps.GetByID(context.Background(), env.bob, created.ID); !errors.Is(err, ErrSwapAccessDenied) {
		t.Fatalf("other staff err = %v, want ErrSwapAccessDenied", err)
	}
	if _, err := env.swaps.GetByID(context.Background(), env.alice, created.ID); err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if _, err := env.swaps.GetByID(context.Background(), env.manager, created.ID); err != nil {
		t.Fatalf("manager read: %v", err)
	}
}

// ────────────────────── volunteering ──────────────────────

func TestVolunteerMatchesRequest(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)
	created := env.createSwap(t, env.alice, shift.ShiftID, "appointment")

	resp, err := env.swaps.Volunteer(context.Background(), env.bob, created.ID, &dto.VolunteerRequest{Note: "happy to cover"})
	if err != nil {
		t.Fatalf("volunteer: %v", err)
	}

	if resp.Status != model.SwapStatusMatched {
		t.Errorf("status = %q, want %q", resp.Status, model.SwapStatusMatched)
	}
	if resp.MatchedAt == "" {
		t.Error("matched_at not stamped")
	}
	if len(resp.Volunteers) != 1 {
		t.Fatalf("volunteers = %d, want 1", len(resp.Volunteers))
	}
	v := resp.Volunteers[0]
	if v.UserID != env.bob.ID || v.Name != "Bob" || v.Role != model.RoleStaff || v.Note != "happy to cover" {
		t.Errorf("volunteer snapshot wrong: %+v", v)
	}
}

func TestVolunteerOwnRequest(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)
	created := env.createSwap(t, env.alice, shift.ShiftID, "appointment")

	_, err := env.swaps.Volunteer(context.Background(), env.alice, created.ID, &dto.VolunteerRequest{})
	if !errors.Is(err, ErrSelfVolunteer) {
		t.Fatalf("err = %v, want ErrSelfVolunteer", err)
	}
}

func TestVolunteerAfterMatch(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)
	created := env.createSwap(t, env.alice, shift.ShiftID, "appointment")

	if _, err := env.swaps.Volunteer(context.Background(), env.bob, created.ID, &dto.VolunteerRequest{}); err != nil {
		t.Fatalf("first volunteer: %v", err)
	}
	_, err := env.swaps.Volunteer(context.Background(), env.carol, created.ID, &dto.VolunteerRequest{})
	if !errors.Is(err, ErrSwapNotAccepting) {
		t.Fatalf("second volunteer err = %v, want ErrSwapNotAccepting", err)
	}
}

// Two volunteers racing for the same pending request: exactly one wins, the
// request ends matched with a single volunteer row.
func TestVolunteerConcurrentSingleWinner(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)
	created := env.createSwap(t, env.alice, shift.ShiftID, "appointment")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, caller := range []Caller{env.bob, env.carol} {
		wg.Add(1)
		go func(i int, caller Caller) {
			defer wg.Done()
			_, errs[i] = env.swaps.Volunteer(context.Background(), caller, created.ID, &dto.VolunteerRequest{})
		}(i, caller)
	}
	wg.Wait()

	var wins, losses int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrSwapNotAccepting):
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || losses != 1 {
		t.Fatalf("wins = %d, losses = %d, want exactly one of each", wins, losses)
	}

	final, err := env.swaps.GetByID(context.Background(), env.manager, created.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if final.Status != model.SwapStatusMatched {
		t.Errorf("status = %q, want %q", final.Status, model.SwapStatusMatched)
	}
	if len(final.Volunteers) != 1 {
		t.Errorf("volunteers = %d, want 1", len(final.Volunteers))
	}
}

// ────────────────────── decisions ──────────────────────

func TestApproveRequiresMatch(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)
	created := env.createSwap(t, env.alice, shift.ShiftID, "appointment")

	if _, err := env.swaps.Approve(context.Background(), env.manager, created.ID); !errors.Is(err, ErrSwapNotMatched) {
		t.Fatalf("approve pending err = %v, want ErrSwapNotMatched", err)
	}

	if _, err := env.swaps.Volunteer(context.Background(), env.bob, created.ID, &dto.VolunteerRequest{}); err != nil {
		t.Fatalf("volunteer: %v", err)
	}

	resp, err := env.swaps.Approve(context.Background(), env.manager, created.ID)
	if err != nil {
		t.Fatalf("approve matched: %v", err)
	}
	if resp.Status != model.SwapStatusApproved {
		t.Errorf("status = %q, want %q", resp.Status, model.SwapStatusApproved)
	}
	if resp.DecidedAt == "" {
		t.Error("decided_at not stamped")
	}
}

func TestRejectRequiresReason(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)
	created := env.createSwap(t, env.alice, shift.ShiftID, "appointment")
	if _, err := env.swaps.Volunteer(context.Background(), env.bob, created.ID, &dto.VolunteerRequest{}); err != nil {
		t.Fatalf("volunteer: %v", err)
	}

	if _, err := env.swaps.Reject(context.Background(), env.manager, created.ID, "  "); !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("blank reason err = %v, want ErrReasonRequired", err)
	}

	resp, err := env.swaps.Reject(context.Background(), env.manager, created.ID, "insufficient coverage")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if resp.Status != model.SwapStatusRejected {
		t.Errorf("status = %q, want %q", resp.Status, model.SwapStatusRejected)
	}
	if resp.RejectionReason != "insufficient coverage" {
		t.Errorf("rejection_reason = %q", resp.RejectionReason)
	}
}

// The role gate fires before the state check, so a non-manager always sees
// the authorization error whatever the request's status.
func TestDecideManagerOnly(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)
	created := env.createSwap(t, env.alice, shift.ShiftID, "appointment")

	if _, err := env.swaps.Approve(context.Background(), env.bob, created.ID); !errors.Is(err, ErrManagerOnly) {
		t.Fatalf("staff approve on pending err = %v, want ErrManagerOnly", err)
	}

	if _, err := env.swaps.Volunteer(context.Background(), env.bob, created.ID, &dto.VolunteerRequest{}); err != nil {
		t.Fatalf("volunteer: %v", err)
	}
	if _, err := env.swaps.Approve(context.Background(), env.alice, created.ID); !errors.Is(err, ErrManagerOnly) {
		t.Fatalf("requester approve on matched err = %v, want ErrManagerOnly", err)
	}
	if _, err := env.swaps.Reject(context.Background(), env.carol, created.ID, "nope"); !errors.Is(err, ErrManagerOnly) {
		t.Fatalf("staff reject err = %v, want ErrManagerOnly", err)
	}
}

func TestStatusMachineForwardOnly(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)
	created := env.createSwap(t, env.alice, shift.ShiftID, "appointment")
	if _, err := env.swaps.Volunteer(context.Background(), env.bob, created.ID, &dto.VolunteerRequest{}); err != nil {
		t.Fatalf("volunteer: %v", err)
	}
	if _, err := env.swaps.Approve(context.Background(), env.manager, created.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	// Terminal requests take no further transitions or volunteers.
	if _, err := env.swaps.Approve(context.Background(), env.manager, created.ID); !errors.Is(err, ErrSwapNotMatched) {
		t.Fatalf("re-approve err = %v, want ErrSwapNotMatched", err)
	}
	if _, err := env.swaps.Volunteer(context.Background(), env.carol, created.ID, &dto.VolunteerRequest{}); !errors.Is(err, ErrSwapNotAccepting) {
		t.Fatalf("volunteer on terminal err = %v, want ErrSwapNotAccepting", err)
	}
	if _, err := env.swaps.UpdateStatus(context.Background(), env.manager, created.ID, &dto.UpdateSwapStatusRequest{
		Status: model.SwapStatusPending,
	}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("backward transition err = %v, want ErrInvalidTransition", err)
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)
	created := env.createSwap(t, env.alice, shift.ShiftID, "appointment")

	if _, err := env.swaps.UpdateStatus(context.Background(), env.manager, created.ID, &dto.UpdateSwapStatusRequest{
		Status: "accepted",
	}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("unknown status err = %v, want ErrInvalidStatus", err)
	}

	if _, err := env.swaps.UpdateStatus(context.Background(), env.bob, created.ID, &dto.UpdateSwapStatusRequest{
		Status: model.SwapStatusApproved,
	}); !errors.Is(err, ErrSwapAccessDenied) {
		t.Fatalf("unrelated staff err = %v, want ErrSwapAccessDenied", err)
	}
}

// ────────────────────── cancellation ──────────────────────

func TestDeleteSwapRequest(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)
	created := env.createSwap(t, env.alice, shift.ShiftID, "appointment")

	if err := env.swaps.Delete(context.Background(), env.bob, created.ID); !errors.Is(err, ErrSwapAccessDenied) {
		t.Fatalf("other staff delete err = %v, want ErrSwapAccessDenied", err)
	}

	if err := env.swaps.Delete(context.Background(), env.alice, created.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := env.swaps.GetByID(context.Background(), env.alice, created.ID); !errors.Is(err, ErrSwapNotFound) {
		t.Fatalf("deleted request err = %v, want ErrSwapNotFound", err)
	}

	// The shift becomes postable again.
	again := env.createSwap(t, env.alice, shift.ShiftID, "second attempt")
	if again.Status != model.SwapStatusPending {
		t.Errorf("re-posted status = %q, want %q", again.Status, model.SwapStatusPending)
	}
}

func TestDeleteMatchedRemovesVolunteers(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)
	created := env.createSwap(t, env.alice, shift.ShiftID, "appointment")
	if _, err := env.swaps.Volunteer(context.Background(), env.bob, created.ID, &dto.VolunteerRequest{}); err != nil {
		t.Fatalf("volunteer: %v", err)
	}

	if err := env.swaps.Delete(context.Background(), env.alice, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	vols, err := env.repo.Volunteer.ListBySwapRequest(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("list volunteers: %v", err)
	}
	if len(vols) != 0 {
		t.Fatalf("volunteer rows survived delete: %d", len(vols))
	}
}

// ────────────────────── views ──────────────────────

func TestListOpenExcludesOwnRequests(t *testing.T) {
	env := newSwapTestEnv(t)
	aliceShift := env.seedShift(t, env.alice)
	bobShift := env.seedShift(t, env.bob)
	env.createSwap(t, env.alice, aliceShift.ShiftID, "appointment")
	env.createSwap(t, env.bob, bobShift.ShiftID, "family matter")

	open, err := env.swaps.ListOpen(context.Background(), env.alice)
	if err != nil {
		t.Fatalf("list open: %v", err)
	}
	if len(open) != 1 {
		t.Fatalf("open swaps = %d, want 1", len(open))
	}
	if open[0].UserID != env.bob.ID || open[0].RequesterName != "Bob" {
		t.Errorf("open swap = %+v, want Bob's request", open[0])
	}
}

func TestApprovalViews(t *testing.T) {
	env := newSwapTestEnv(t)
	aliceShift := env.seedShift(t, env.alice)
	bobShift := env.seedShift(t, env.bob)
	matched := env.createSwap(t, env.alice, aliceShift.ShiftID, "appointment")
	env.createSwap(t, env.bob, bobShift.ShiftID, "family matter")

	if _, err := env.swaps.Volunteer(context.Background(), env.carol, matched.ID, &dto.VolunteerRequest{}); err != nil {
		t.Fatalf("volunteer: %v", err)
	}

	queue, err := env.swaps.ListApprovals(context.Background())
	if err != nil {
		t.Fatalf("list approvals: %v", err)
	}
	if len(queue) != 1 {
		t.Fatalf("approval queue = %d, want 1 (only matched)", len(queue))
	}
	if queue[0].RequesterName != "Alice" || queue[0].VolunteerName != "Carol" {
		t.Errorf("queue entry = %+v", queue[0])
	}

	if _, err := env.swaps.Reject(context.Background(), env.manager, matched.ID, "insufficient coverage"); err != nil {
		t.Fatalf("reject: %v", err)
	}

	history, err := env.swaps.ApprovalHistory(context.Background())
	if err != nil {
		t.Fatalf("approval history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history = %d, want 1", len(history))
	}
	if history[0].Status != model.SwapStatusRejected || history[0].RejectionReason != "insufficient coverage" {
		t.Errorf("history entry = %+v", history[0])
	}
}

// A decided request with no volunteer row (only reachable through direct data
// edits) still renders the placeholder display fields.
func TestApprovalViewVolunteerFallback(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)
	created := env.createSwap(t, env.alice, shift.ShiftID, "appointment")
	if _, err := env.swaps.Volunteer(context.Background(), env.bob, created.ID, &dto.VolunteerRequest{}); err != nil {
		t.Fatalf("volunteer: %v", err)
	}
	if err := env.repo.Volunteer.DeleteBySwapRequest(context.Background(), created.ID); err != nil {
		t.Fatalf("clear volunteers: %v", err)
	}

	queue, err := env.swaps.ListApprovals(context.Background())
	if err != nil {
		t.Fatalf("list approvals: %v", err)
	}
	if len(queue) != 1 {
		t.Fatalf("queue = %d, want 1", len(queue))
	}
	if queue[0].VolunteerName != "No volunteer yet" || queue[0].VolunteerRole != "N/A" {
		t.Errorf("fallback fields = %q / %q", queue[0].VolunteerName, queue[0].VolunteerRole)
	}
}

// ────────────────────── full lifecycle ──────────────────────

func TestSwapLifecycleEndToEnd(t *testing.T) {
	env := newSwapTestEnv(t)
	shift := env.seedShift(t, env.alice)

	created := env.createSwap(t, env.alice, shift.ShiftID, "doctor appointment")

	// Bob volunteers and wins the match; Carol is too late.
	if _, err := env.swaps.Volunteer(context.Background(), env.bob, created.ID, &dto.VolunteerRequest{Note: "free that day"}); err != nil {
		t.Fatalf("bob volunteers: %v", err)
	}
	if _, err := env.swaps.Volunteer(context.Background(), env.carol, created.ID, &dto.VolunteerRequest{}); !errors.Is(err, ErrSwapNotAccepting) {
		t.Fatalf("carol volunteers err = %v, want ErrSwapNotAccepting", err)
	}

	// The manager rejects with a reason.
	rejected, err := env.swaps.Reject(context.Background(), env.manager, created.ID, "insufficient coverage")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != model.SwapStatusRejected {
		t.Errorf("status = %q, want %q", rejected.Status, model.SwapStatusRejected)
	}
	if rejected.DecidedAt == "" {
		t.Error("decided_at not stamped")
	}

	// Rejection is terminal.
	if _, err := env.swaps.Approve(context.Background(), env.manager, created.ID); !errors.Is(err, ErrSwapNotMatched) {
		t.Fatalf("approve after reject err = %v, want ErrSwapNotMatched", err)
	}
}
