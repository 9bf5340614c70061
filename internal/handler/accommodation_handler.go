package handler

import (
	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/internal/service"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type AccommodationHandler struct {
	accommodationService *service.AccommodationService
	validator            *utils.Validator
}

func NewAccommodationHandler(accommodationService *service.AccommodationService, validator *utils.Validator) *AccommodationHandler {
	return &AccommodationHandler{
		accommodationService: accommodationService,
		validator:            validator,
	}
}

func (h *AccommodationHandler) List(c *fiber.Ctx) error {
	accommodations, err := h.accommodationService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(accommodations, ""))
}

func (h *AccommodationHandler) Get(c *fiber.Ctx) error {
	accommodation, err := h.accommodationService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(accommodation, ""))
}

func (h *AccommodationHandler) Create(c *fiber.Ctx) error {
	var req models.CreateAccommodationRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return respondError(c, err)
	}

	accommodation, err := h.accommodationService.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(accommodation, "Accommodation created"))
}

func (h *AccommodationHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateAccommodationRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return respondError(c, err)
	}

	accommodation, err := h.accommodationService.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(accommodation, "Accommodation updated"))
}
