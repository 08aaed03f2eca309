package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Syed25794/shift-swap-ai/internal/dto"
	"github.com/Syed25794/shift-swap-ai/internal/service"
	"github.com/Syed25794/shift-swap-ai/pkg/response"
)

// SwapHandler serves the swap request lifecycle endpoints.
type SwapHandler struct {
	swapSvc service.SwapService
}

// NewSwapHandler creates a SwapHandler.
func NewSwapHandler(swapSvc service.SwapService) *SwapHandler {
	return &SwapHandler{swapSvc: swapSvc}
}

// Create posts one of the caller's shifts for swapping.
// POST /api/v1/swap-requests
func (h *SwapHandler) Create(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	var req dto.CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	swap, err := h.swapSvc.Create(c.Request.Context(), caller, &req)
	if err != nil {
		h.handleSwapError(c, err)
		return
	}

	response.Created(c, swap)
}

// List returns swap requests visible to the caller, filterable by user and
// by a comma-separated status set.
// GET /api/v1/swap-requests?user_id=...&status=pending,matched
func (h *SwapHandler) List(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	var query dto.ListSwapRequestsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	swaps, err := h.swapSvc.List(c.Request.Context(), caller, &query)
	if err != nil {
		h.handleSwapError(c, err)
		return
	}

	response.OK(c, swaps)
}

// GetByID returns one swap request.
// GET /api/v1/swap-requests/:id
func (h *SwapHandler) GetByID(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	swap, err := h.swapSvc.GetByID(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		h.handleSwapError(c, err)
		return
	}

	response.OK(c, swap)
}

// UpdateStatus applies a status transition.
// PUT /api/v1/swap-requests/:id
func (h *SwapHandler) UpdateStatus(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	var req dto.UpdateSwapStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	swap, err := h.swapSvc.UpdateStatus(c.Request.Context(), caller, c.Param("id"), &req)
	if err != nil {
		h.handleSwapError(c, err)
		return
	}

	response.OK(c, swap)
}

// Delete cancels a swap request and its volunteer records.
// DELETE /api/v1/swap-requests/:id
func (h *SwapHandler) Delete(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	if err := h.swapSvc.Delete(c.Request.Context(), caller, c.Param("id")); err != nil {
		h.handleSwapError(c, err)
		return
	}

	response.OK(c, nil)
}

// Volunteer offers to take over the requester's shift.
// POST /api/v1/swap-requests/:id/volunteer
func (h *SwapHandler) Volunteer(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	var req dto.VolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	swap, err := h.swapSvc.Volunteer(c.Request.Context(), caller, c.Param("id"), &req)
	if err != nil {
		h.handleSwapError(c, err)
		return
	}

	response.OK(c, swap)
}

// ListOpen returns other workers' pending requests, open for volunteering.
// GET /api/v1/open-swaps
func (h *SwapHandler) ListOpen(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	swaps, err := h.swapSvc.ListOpen(c.Request.Context(), caller)
	if err != nil {
		h.handleSwapError(c, err)
		return
	}

	response.OK(c, swaps)
}

func (h *SwapHandler) handleSwapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSwapNotFound):
		response.NotFound(c, 13001, "swap request not found")
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 12001, "shift not found")
	case errors.Is(err, service.ErrSwapAccessDenied):
		response.Forbidden(c, 13002, "not allowed to access this swap request")
	case errors.Is(err, service.ErrNotShiftOwner):
		response.Forbidden(c, 13003, "cannot request a swap for a shift you do not own")
	case errors.Is(err, service.ErrManagerOnly):
		response.Forbidden(c, 13004, "only managers can decide swap requests")
	case errors.Is(err, service.ErrReasonRequired):
		response.BadRequest(c, 13005, "a reason is required")
	case errors.Is(err, service.ErrSelfVolunteer):
		response.BadRequest(c, 13006, "cannot volunteer for your own swap request")
	case errors.Is(err, service.ErrSwapNotAccepting):
		response.BadRequest(c, 13007, "swap request is no longer accepting volunteers")
	case errors.Is(err, service.ErrSwapNotMatched):
		response.BadRequest(c, 13008, "swap request has no accepted volunteer yet")
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, 13009, "unknown swap request status")
	case errors.Is(err, service.ErrInvalidTransition):
		response.BadRequest(c, 13010, "status transition not allowed")
	case errors.Is(err, service.ErrShiftAlreadyPosted):
		response.BadRequest(c, 13011, "shift already has an active swap request")
	default:
		response.InternalError(c)
	}
}
