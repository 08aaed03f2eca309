package dto

// ── swap request operations ──

// CreateSwapRequest posts a shift for swapping.
type CreateSwapRequest struct {
	ShiftID string `json:"shift_id" binding:"required"`
	Reason  string `json:"reason"   binding:"required,max=500"`
}

// ListSwapRequestsQuery filters the swap request list.
type ListSwapRequestsQuery struct {
	UserID string `form:"user_id"`
	Status string `form:"status"` // comma-separated set, match any
}

// UpdateSwapStatusRequest applies a status transition directly.
// Reason is required when the target status is rejected.
type UpdateSwapStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// VolunteerRequest offers to take over the requester's shift.
type VolunteerRequest struct {
	Note    string `json:"note"     binding:"omitempty,max=500"`
	ShiftID string `json:"shift_id" binding:"omitempty"`
}

// RejectSwapRequest carries the mandatory rejection reason.
type RejectSwapRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// ── responses ──

// SwapRequestResponse is the full swap request view.
type SwapRequestResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	ShiftID         string              `json:"shift_id"`
	Date            string              `json:"date"`
	StartTime       string              `json:"start_time"`
	EndTime         string              `json:"end_time"`
	Role            string              `json:"role"`
	Location        string              `json:"location"`
	Reason          string              `json:"reason"`
	Status          string              `json:"status"`
	RejectionReason string              `json:"rejection_reason,omitempty"`
	CreatedAt       string              `json:"created_at"`
	MatchedAt       string              `json:"matched_at,omitempty"`
	DecidedAt       string              `json:"decided_at,omitempty"`
	Volunteers      []VolunteerResponse `json:"volunteers"`
}

// VolunteerResponse is one volunteer on a swap request.
type VolunteerResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at"`
}

// OpenSwapResponse is a pending request from another worker, eligible for
// volunteering, with requester display fields attached.
type OpenSwapResponse struct {
	SwapRequestResponse
	RequesterName string `json:"requester_name"`
	RequesterRole string `json:"requester_role"`
}

// ApprovalResponse is the manager view of a request awaiting or past
// decision, with requester and volunteer display fields attached.
type ApprovalResponse struct {
	SwapRequestResponse
	RequesterName string `json:"requester_name"`
	RequesterRole string `json:"requester_role"`
	VolunteerName string `json:"volunteer_name"`
	VolunteerRole string `json:"volunteer_role"`
}
