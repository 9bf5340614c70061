package handler

import (
	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/internal/service"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type TravelPlanHandler struct {
	travelPlanService *service.TravelPlanService
	validator         *utils.Validator
}

func NewTravelPlanHandler(travelPlanService *service.TravelPlanService, validator *utils.Validator) *TravelPlanHandler {
	return &TravelPlanHandler{
		travelPlanService: travelPlanService,
		validator:         validator,
	}
}

func (h *TravelPlanHandler) Create(c *fiber.Ctx) error {
	userID, err := requesterID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.CreateTravelPlanRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return respondError(c, err)
	}

	plan, err := h.travelPlanService.Create(c.UserContext(), userID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(plan, "Travel plan created"))
}

// ListMine ignores the :userId segment and lists the caller's plans.
func (h *TravelPlanHandler) ListMine(c *fiber.Ctx) error {
	userID, err := requesterID(c)
	if err != nil {
		return respondError(c, err)
	}

	plans, err := h.travelPlanService.ListByUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(plans, ""))
}

func (h *TravelPlanHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateTravelPlanRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return respondError(c, err)
	}

	plan, err := h.travelPlanService.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(plan, "Travel plan updated"))
}

func (h *TravelPlanHandler) Delete(c *fiber.Ctx) error {
	if err := h.travelPlanService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Travel Plan deleted"))
}
