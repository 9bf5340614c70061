package service

import (
	"context"
	"errors"

	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/internal/repository"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/email"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/jwt"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Activate(ctx context.Context, id primitive.ObjectID) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error
}

type AccommodationStore interface {
	Create(ctx context.Context, accommodation *models.Accommodation) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Accommodation, error)
	GetAll(ctx context.Context) ([]models.Accommodation, error)
	Update(ctx context.Context, accommodation *models.Accommodation) error
}

type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.BookingWithAccommodation, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type DestinationStore interface {
	GetAll(ctx context.Context, order models.SortOrder) ([]models.Destination, error)
	GetPopular(ctx context.Context, limit int64) ([]models.Destination, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Destination, error)
}

type TravelPlanStore interface {
	Create(ctx context.Context, plan *models.TravelPlan) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.TravelPlan, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.TravelPlanWithDestination, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.TravelPlanPatch) (*models.TravelPlan, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type DiscoveryStore interface {
	Create(ctx context.Context, discovery *models.Discovery) error
	GetAll(ctx context.Context) ([]models.Discovery, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Discovery, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Discovery, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.DiscoveryPatch) (*models.Discovery, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddLike(ctx context.Context, id, userID primitive.ObjectID) (bool, error)
	RemoveLike(ctx context.Context, id, userID primitive.ObjectID) (bool, error)
	AddComment(ctx context.Context, id primitive.ObjectID, comment models.Comment) error
	UpdateComment(ctx context.Context, id, commentID primitive.ObjectID, text string) error
	DeleteComment(ctx context.Context, id, commentID primitive.ObjectID) error
}

// Notifier sends transactional email. *email.EmailService satisfies it.
type Notifier interface {
	Send(ctx context.Context, mode email.Mode, n email.Notification) error
}

type TokenManager interface {
	GenerateToken(userID string, purpose jwt.Purpose) (string, error)
	ValidateToken(token string, purpose jwt.Purpose) (string, error)
}

var (
	_ UserStore          = (*repository.UserRepository)(nil)
	_ AccommodationStore = (*repository.AccommodationRepository)(nil)
	_ BookingStore       = (*repository.BookingRepository)(nil)
	_ DestinationStore   = (*repository.DestinationRepository)(nil)
	_ TravelPlanStore    = (*repository.TravelPlanRepository)(nil)
	_ DiscoveryStore     = (*repository.DiscoveryRepository)(nil)
	_ Notifier           = (*email.EmailService)(nil)
	_ TokenManager       = (*jwt.Manager)(nil)
)

// ParseID turns a hex object id from a path or body into an ObjectID.
func ParseID(kind, hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ValidationError{Msg: "Invalid " + kind + " id", Err: err}
	}
	return id, nil
}

// notFound maps repository.ErrNotFound to NotFoundError and leaves other
// errors untouched.
func notFound(resource string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return NotFoundError{Resource: resource, Err: err}
	}
	return err
}
