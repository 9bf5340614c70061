package handler

import "github.com/gofiber/fiber/v2"

type Handlers struct {
	Auth          *AuthHandler
	User          *UserHandler
	Accommodation *AccommodationHandler
	Booking       *BookingHandler
	Destination   *DestinationHandler
	TravelPlan    *TravelPlanHandler
	Discovery     *DiscoveryHandler
	Upload        *UploadHandler
}

// RegisterRoutes mounts every endpoint under /api. protect guards the routes
// that need a signed-in user.
func RegisterRoutes(app *fiber.App, h Handlers, protect fiber.Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Get("/activate/:token", h.Auth.Activate)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/forgot-password", h.Auth.ForgotPassword)
	auth.Post("/reset-password/:token", h.Auth.ResetPassword)
	auth.Get("/user/:userId", protect, h.User.GetUser)

	accommodations := api.Group("/accommodations")
	accommodations.Get("/", h.Accommodation.List)
	accommodations.Get("/:id", h.Accommodation.Get)
	accommodations.Post("/", protect, h.Accommodation.Create)
	accommodations.Put("/:id", protect, h.Accommodation.Update)

	bookings := api.Group("/bookings", protect)
	bookings.Post("/book", h.Booking.Book)
	bookings.Delete("/:id/cancel", h.Booking.Cancel)
	bookings.Get("/user/:userId", h.Booking.ListByUser)

	destinations := api.Group("/destinations")
	destinations.Get("/", h.Destination.List)
	destinations.Get("/popular", h.Destination.Popular)
	destinations.Get("/:id", h.Destination.Get)

	plans := api.Group("/travel-plans", protect)
	plans.Post("/", h.TravelPlan.Create)
	plans.Get("/user/:userId", h.TravelPlan.ListMine)
	plans.Put("/:id", h.TravelPlan.Update)
	plans.Delete("/:id", h.TravelPlan.Delete)

	discoveries := api.Group("/discoveries")
	discoveries.Post("/new", protect, h.Discovery.Create)
	discoveries.Put("/update/:id", protect, h.Discovery.Update)
	discoveries.Get("/discoveries", h.Discovery.List)
	discoveries.Get("/my-discoveries", protect, h.Discovery.ListMine)
	discoveries.Get("/discoveries/:id", h.Discovery.Get)
	discoveries.Delete("/discoveries/:id", protect, h.Discovery.Delete)
	discoveries.Post("/:id/like", protect, h.Discovery.Like)
	discoveries.Post("/:id/unlike", protect, h.Discovery.Unlike)
	discoveries.Post("/discoveries/:id/comment", protect, h.Discovery.AddComment)
	discoveries.Put("/discoveries/:discoveryId/comment/:commentId", protect, h.Discovery.UpdateComment)
	discoveries.Delete("/discoveries/:discoveryId/comment/:commentId", protect, h.Discovery.DeleteComment)

	api.Post("/upload", h.Upload.Upload)
}
