package service

import "github.com/Syed25794/shift-swap-ai/internal/model"

// Authorization rules for swap requests, kept in one place so every
// operation gates access identically instead of re-checking role strings
// per endpoint.

// canAccessSwapRequest allows read, status update and delete: the requester
// who owns the request, or any manager.
func canAccessSwapRequest(caller Caller, req *model.SwapRequest) bool {
	return caller.IsManager() || caller.ID == req.UserID
}

// canRequestSwapForShift allows posting a swap request: only the worker the
// shift is assigned to.
func canRequestSwapForShift(caller Caller, shift *model.Shift) bool {
	return caller.ID == shift.UserID
}

// canVolunteerForSwap allows volunteering: any authenticated user except the
// requester.
func canVolunteerForSwap(caller Caller, req *model.SwapRequest) bool {
	return caller.ID != req.UserID
}

// canDecideSwap allows approve/reject: managers only.
func canDecideSwap(caller Caller) bool {
	return caller.IsManager()
}

// canViewShift allows reading a shift: its owner or any manager.
func canViewShift(caller Caller, shift *model.Shift) bool {
	return caller.IsManager() || caller.ID == shift.UserID
}
