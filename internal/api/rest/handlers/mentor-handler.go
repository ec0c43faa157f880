package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/dto"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/services"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/pkg/utils"
)

type MentorHandler struct {
	svc services.AssignmentService
}

func NewMentorHandler(svc services.AssignmentService) *MentorHandler {
	return &MentorHandler{svc: svc}
}

// POST /api/mentor-assignments
func (h *MentorHandler) Assign(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(uint)
	if !ok || userID == 0 {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var requestBody dto.AssignRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.Assign(ctx.UserContext(), userID, requestBody); err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"success": true})
}

// DELETE /api/mentor-assignments/:studentID
func (h *MentorHandler) Unassign(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(uint)
	if !ok || userID == 0 {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	studentID, err := parseUintParam(ctx, "studentID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid student id")
	}

	if err := h.svc.Unassign(ctx.UserContext(), userID, studentID); err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"success": true})
}

// GET /api/mentor-assignments/mentor/:mentorID
func (h *MentorHandler) ListStudents(ctx *fiber.Ctx) error {
	mentorID, err := parseUintParam(ctx, "mentorID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid mentor id")
	}

	students, err := h.svc.ListStudentsForMentor(ctx.UserContext(), mentorID)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, students)
}

// GET /api/mentor-assignments/student/:studentID
func (h *MentorHandler) GetMentor(ctx *fiber.Ctx) error {
	studentID, err := parseUintParam(ctx, "studentID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid student id")
	}

	mentor, err := h.svc.GetMentorForStudent(ctx.UserContext(), studentID)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	if mentor == nil {
		return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"mentor": nil})
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, mentor)
}

func parseUintParam(ctx *fiber.Ctx, name string) (uint, error) {
	v, err := strconv.ParseUint(ctx.Params(name), 10, 32)
	if err != nil || v == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(v), nil
}
