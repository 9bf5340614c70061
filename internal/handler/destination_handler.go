package handler

import (
	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/internal/service"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type DestinationHandler struct {
	destinationService *service.DestinationService
	validator          *utils.Validator
}

func NewDestinationHandler(destinationService *service.DestinationService, validator *utils.Validator) *DestinationHandler {
	return &DestinationHandler{
		destinationService: destinationService,
		validator:          validator,
	}
}

func (h *DestinationHandler) List(c *fiber.Ctx) error {
	var query models.ListDestinationsQuery
	if err := c.QueryParser(&query); err != nil {
		return respondError(c, service.ValidationError{Msg: "Invalid query", Err: err})
	}
	if err := h.validator.Struct(query); err != nil {
		return respondError(c, service.ValidationError{Msg: utils.Describe(err), Err: err})
	}

	destinations, err := h.destinationService.List(c.UserContext(), query.SortOrder)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(destinations, ""))
}

func (h *DestinationHandler) Popular(c *fiber.Ctx) error {
	destinations, err := h.destinationService.Popular(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(destinations, ""))
}

func (h *DestinationHandler) Get(c *fiber.Ctx) error {
	destination, err := h.destinationService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(destination, ""))
}
