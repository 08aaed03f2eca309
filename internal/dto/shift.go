package dto

// CreateShiftRequest adds a shift owned by the caller.
type CreateShiftRequest struct {
	Date      string `json:"date"       binding:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"required,datetime=15:04"`
	EndTime   string `json:"end_time"   binding:"required,datetime=15:04"`
	Role      string `json:"role"       binding:"required,max=100"`
	Location  string `json:"location"   binding:"required,max=255"`
}

// ListShiftsQuery filters the caller's shift list.
type ListShiftsQuery struct {
	// Swappable keeps only shifts with no active swap request, i.e. shifts
	// the caller could still post for swapping.
	Swappable bool `form:"swappable"`
}

// ShiftResponse is one scheduled work assignment.
type ShiftResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Role      string `json:"role"`
	Location  string `json:"location"`
	CreatedAt string `json:"created_at"`
	// HasActiveSwapRequest is true when a pending or matched request
	// already references this shift.
	HasActiveSwapRequest bool `json:"has_active_swap_request"`
}
