package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Syed25794/shift-swap-ai/internal/dto"
	"github.com/Syed25794/shift-swap-ai/internal/service"
	"github.com/Syed25794/shift-swap-ai/pkg/response"
)

// ShiftHandler serves the shift endpoints.
type ShiftHandler struct {
	shiftSvc service.ShiftService
}

// NewShiftHandler creates a ShiftHandler.
func NewShiftHandler(shiftSvc service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftSvc: shiftSvc}
}

// Create adds a shift owned by the caller.
// POST /api/v1/shifts
func (h *ShiftHandler) Create(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	shift, err := h.shiftSvc.Create(c.Request.Context(), caller, &req)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.Created(c, shift)
}

// List returns the caller's shifts, optionally only the swappable ones.
// GET /api/v1/shifts?swappable=true
func (h *ShiftHandler) List(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	var query dto.ListShiftsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	shifts, err := h.shiftSvc.ListMine(c.Request.Context(), caller, &query)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.OK(c, shifts)
}

// GetByID returns one shift.
// GET /api/v1/shifts/:id
func (h *ShiftHandler) GetByID(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	shift, err := h.shiftSvc.GetByID(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.OK(c, shift)
}

func (h *ShiftHandler) handleShiftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 12001, "shift not found")
	case errors.Is(err, service.ErrShiftAccessDenied):
		response.Forbidden(c, 12002, "not allowed to access this shift")
	case errors.Is(err, service.ErrShiftDateInvalid):
		response.BadRequest(c, 12003, "invalid shift date")
	case errors.Is(err, service.ErrShiftTimeInvalid):
		response.BadRequest(c, 12004, "shift end time must be after start time")
	default:
		response.InternalError(c)
	}
}
