package middleware

import (
	"strings"

	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TokenValidator interface {
	ValidateToken(token string, purpose jwt.Purpose) (string, error)
}

// AuthMiddleware accepts "Authorization: Bearer <token>" and stores the
// caller's ObjectID in the "userID" local. Only access tokens are accepted.
func AuthMiddleware(tokens TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Not authorized, no token"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid authorization header format"))
		}

		userID, err := tokens.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "), jwt.PurposeAccess)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Not authorized, token failed"))
		}

		id, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid user ID in token"))
		}

		c.Locals("userID", id)
		return c.Next()
	}
}
