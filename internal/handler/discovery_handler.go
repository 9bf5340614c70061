package handler

import (
	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/internal/service"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type DiscoveryHandler struct {
	discoveryService *service.DiscoveryService
	validator        *utils.Validator
}

func NewDiscoveryHandler(discoveryService *service.DiscoveryService, validator *utils.Validator) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryService: discoveryService,
		validator:        validator,
	}
}

func (h *DiscoveryHandler) Create(c *fiber.Ctx) error {
	userID, err := requesterID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.CreateDiscoveryRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return respondError(c, err)
	}

	discovery, err := h.discoveryService.Create(c.UserContext(), userID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(discovery, "Discovery created"))
}

func (h *DiscoveryHandler) Update(c *fiber.Ctx) error {
	userID, err := requesterID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.UpdateDiscoveryRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return respondError(c, err)
	}

	discovery, err := h.discoveryService.Update(c.UserContext(), userID, c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(discovery, "Discovery updated"))
}

func (h *DiscoveryHandler) List(c *fiber.Ctx) error {
	discoveries, err := h.discoveryService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(discoveries, ""))
}

func (h *DiscoveryHandler) ListMine(c *fiber.Ctx) error {
	userID, err := requesterID(c)
	if err != nil {
		return respondError(c, err)
	}

	discoveries, err := h.discoveryService.ListByUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(discoveries, ""))
}

func (h *DiscoveryHandler) Get(c *fiber.Ctx) error {
	discovery, err := h.discoveryService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(discovery, ""))
}

func (h *DiscoveryHandler) Delete(c *fiber.Ctx) error {
	userID, err := requesterID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.discoveryService.Delete(c.UserContext(), userID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Discovery deleted successfully"))
}

func (h *DiscoveryHandler) Like(c *fiber.Ctx) error {
	userID, err := requesterID(c)
	if err != nil {
		return respondError(c, err)
	}

	res, err := h.discoveryService.Like(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(res, ""))
}

func (h *DiscoveryHandler) Unlike(c *fiber.Ctx) error {
	userID, err := requesterID(c)
	if err != nil {
		return respondError(c, err)
	}

	res, err := h.discoveryService.Unlike(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(res, ""))
}

func (h *DiscoveryHandler) AddComment(c *fiber.Ctx) error {
	userID, err := requesterID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.CommentRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return respondError(c, err)
	}

	comment, err := h.discoveryService.AddComment(c.UserContext(), userID, c.Params("id"), req.Text)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(comment, "Comment added"))
}

func (h *DiscoveryHandler) UpdateComment(c *fiber.Ctx) error {
	userID, err := requesterID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.CommentRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return respondError(c, err)
	}

	comment, err := h.discoveryService.UpdateComment(c.UserContext(), userID, c.Params("discoveryId"), c.Params("commentId"), req.Text)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(comment, "Comment updated successfully"))
}

func (h *DiscoveryHandler) DeleteComment(c *fiber.Ctx) error {
	userID, err := requesterID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.discoveryService.DeleteComment(c.UserContext(), userID, c.Params("discoveryId"), c.Params("commentId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Comment deleted successfully"))
}
