package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/arunkarthik0712/travel-planner-backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAuthMiddleware(t *testing.T) {
	uid := primitive.NewObjectID()
	tokens := jwt.NewManager("secret")
	access, _ := tokens.GenerateToken(uid.Hex(), jwt.PurposeAccess)
	activation, _ := tokens.GenerateToken(uid.Hex(), jwt.PurposeActivation)
	reset, _ := tokens.GenerateToken(uid.Hex(), jwt.PurposeReset)
	weird, _ := tokens.GenerateToken("not-hex", jwt.PurposeAccess)

	app := fiber.New()
	app.Get("/me", AuthMiddleware(tokens), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("userID").(primitive.ObjectID).Hex())
	})

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Token " + access, fiber.StatusUnauthorized},
		{"garbage", "Bearer bad", fiber.StatusUnauthorized},
		{"non-hex id", "Bearer " + weird, fiber.StatusUnauthorized},
		{"activation token", "Bearer " + activation, fiber.StatusUnauthorized},
		{"reset token", "Bearer " + reset, fiber.StatusUnauthorized},
		{"access token", "Bearer " + access, fiber.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/me", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if resp.StatusCode != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.status, resp.StatusCode)
		}
	}
}
