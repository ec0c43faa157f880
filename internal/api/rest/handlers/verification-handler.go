package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/dto"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/services"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/pkg/utils"
)

type VerificationHandler struct {
	svc services.VerificationService
}

func NewVerificationHandler(svc services.VerificationService) *VerificationHandler {
	return &VerificationHandler{svc: svc}
}

// GET /api/verifications
func (h *VerificationHandler) ListPending(ctx *fiber.Ctx) error {
	queue, err := h.svc.ListPendingVerifications(ctx.UserContext())
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, queue)
}

// PATCH /api/verifications
func (h *VerificationHandler) SetStatus(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(uint)
	if !ok || userID == 0 {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var requestBody dto.SetVerificationStatusRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.SetVerificationStatus(ctx.UserContext(), userID, requestBody); err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.VerificationDecisionResponse{
		Success: true,
		Message: "verification status updated",
	})
}

// GET /api/verifications/:type/:id/history
func (h *VerificationHandler) History(ctx *fiber.Ctx) error {
	id, err := parseUintParam(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid id")
	}

	trail, err := h.svc.History(ctx.UserContext(), ctx.Params("type"), id)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, trail)
}

// GET /api/dashboard
func (h *VerificationHandler) Dashboard(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(uint)
	if !ok || userID == 0 {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	stats, err := h.svc.Dashboard(ctx.UserContext(), userID)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, stats)
}
