package handler

import (
	"errors"

	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/internal/service"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// respondError writes err with the status of its class. Unclassified errors
// become a bare 500 so driver messages never reach the client.
func respondError(c *fiber.Ctx, err error) error {
	var (
		validationErr   service.ValidationError
		notFoundErr     service.NotFoundError
		authzErr        service.AuthorizationError
		authnErr        service.AuthenticationError
		notificationErr service.NotificationError
		serverErr       service.ServerError
	)

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(validationErr.Error()))
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(notFoundErr.Error()))
	case errors.As(err, &authzErr):
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse(authzErr.Error()))
	case errors.As(err, &authnErr):
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(authnErr.Error()))
	case errors.As(err, &notificationErr):
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(notificationErr.Error()))
	case errors.As(err, &serverErr):
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(serverErr.Msg))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Server error"))
	}
}

// parseBody decodes and validates the request body into out.
func parseBody(c *fiber.Ctx, v *utils.Validator, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return service.ValidationError{Msg: "Invalid request body", Err: err}
	}
	if err := v.Struct(out); err != nil {
		return service.ValidationError{Msg: utils.Describe(err), Err: err}
	}
	return nil
}

// requesterID is the user id the auth middleware stored on the context.
func requesterID(c *fiber.Ctx) (primitive.ObjectID, error) {
	id, ok := c.Locals("userID").(primitive.ObjectID)
	if !ok || id.IsZero() {
		return primitive.NilObjectID, service.AuthenticationError{Msg: "Not authorized, no token"}
	}
	return id, nil
}
