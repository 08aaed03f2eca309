package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Syed25794/shift-swap-ai/internal/dto"
	"github.com/Syed25794/shift-swap-ai/internal/service"
	"github.com/Syed25794/shift-swap-ai/pkg/response"
)

// ApprovalHandler serves the manager decision endpoints. Routes are mounted
// behind the manager role gate; the service re-checks the role anyway.
type ApprovalHandler struct {
	swapSvc service.SwapService
}

// NewApprovalHandler creates an ApprovalHandler.
func NewApprovalHandler(swapSvc service.SwapService) *ApprovalHandler {
	return &ApprovalHandler{swapSvc: swapSvc}
}

// List returns the queue of matched requests awaiting a decision.
// GET /api/v1/approvals
func (h *ApprovalHandler) List(c *gin.Context) {
	approvals, err := h.swapSvc.ListApprovals(c.Request.Context())
	if err != nil {
		h.handleApprovalError(c, err)
		return
	}

	response.OK(c, approvals)
}

// History returns decided requests, approved and rejected.
// GET /api/v1/approvals/history
func (h *ApprovalHandler) History(c *gin.Context) {
	history, err := h.swapSvc.ApprovalHistory(c.Request.Context())
	if err != nil {
		h.handleApprovalError(c, err)
		return
	}

	response.OK(c, history)
}

// Approve finalizes a matched request as approved.
// POST /api/v1/approvals/:id/approve
func (h *ApprovalHandler) Approve(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	swap, err := h.swapSvc.Approve(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		h.handleApprovalError(c, err)
		return
	}

	response.OK(c, swap)
}

// Reject finalizes a matched request as rejected with a mandatory reason.
// POST /api/v1/approvals/:id/reject
func (h *ApprovalHandler) Reject(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	var req dto.RejectSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	swap, err := h.swapSvc.Reject(c.Request.Context(), caller, c.Param("id"), req.Reason)
	if err != nil {
		h.handleApprovalError(c, err)
		return
	}

	response.OK(c, swap)
}

func (h *ApprovalHandler) handleApprovalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSwapNotFound):
		response.NotFound(c, 13001, "swap request not found")
	case errors.Is(err, service.ErrManagerOnly):
		response.Forbidden(c, 13004, "only managers can decide swap requests")
	case errors.Is(err, service.ErrReasonRequired):
		response.BadRequest(c, 13005, "a reason is required")
	case errors.Is(err, service.ErrSwapNotMatched):
		response.BadRequest(c, 13008, "swap request has no accepted volunteer yet")
	default:
		response.InternalError(c)
	}
}
