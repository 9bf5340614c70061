package handler

import (
	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/internal/service"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	bookingService *service.BookingService
	validator      *utils.Validator
}

func NewBookingHandler(bookingService *service.BookingService, validator *utils.Validator) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		validator:      validator,
	}
}

func (h *BookingHandler) Book(c *fiber.Ctx) error {
	userID, err := requesterID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.CreateBookingRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return respondError(c, err)
	}

	booking, err := h.bookingService.Create(c.UserContext(), userID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(booking, "Booking created"))
}

func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	if err := h.bookingService.Cancel(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Booking canceled successfully"))
}

func (h *BookingHandler) ListByUser(c *fiber.Ctx) error {
	bookings, err := h.bookingService.ListByUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(bookings, ""))
}
