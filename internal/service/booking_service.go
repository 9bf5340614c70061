package service

import (
	"context"
	"errors"

	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/internal/repository"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/email"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type BookingService struct {
	bookings       BookingStore
	accommodations AccommodationStore
	users          UserStore
	mailer         Notifier
	logger         *zap.Logger
}

func NewBookingService(bookings BookingStore, accommodations AccommodationStore, users UserStore, mailer Notifier, logger *zap.Logger) *BookingService {
	return &BookingService{
		bookings:       bookings,
		accommodations: accommodations,
		users:          users,
		mailer:         mailer,
		logger:         logger.Named("booking"),
	}
}

// Create prices the booking from the accommodation as it is now and stores it.
// The confirmation email is best-effort: once the booking is stored, Create
// succeeds.
func (s *BookingService) Create(ctx context.Context, requesterID primitive.ObjectID, req models.CreateBookingRequest) (*models.Booking, error) {
	userID := requesterID
	if req.UserID != "" {
		id, err := ParseID("user", req.UserID)
		if err != nil {
			return nil, err
		}
		userID = id
	}
	accommodationID, err := ParseID("accommodation", req.AccommodationID)
	if err != nil {
		return nil, err
	}
	checkIn, err := utils.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, ValidationError{Msg: "Invalid checkInDate", Err: err}
	}
	checkOut, err := utils.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, ValidationError{Msg: "Invalid checkOutDate", Err: err}
	}

	accommodation, err := s.accommodations.GetByID(ctx, accommodationID)
	if err != nil {
		return nil, notFound("Accommodation", err)
	}

	booking := &models.Booking{
		UserID:          userID,
		AccommodationID: accommodation.ID,
		NumberOfMembers: req.NumberOfMembers,
		TotalPrice:      accommodation.PricePerBed * float64(req.NumberOfMembers),
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("user lookup for booking confirmation failed", zap.String("booking", booking.ID.Hex()), zap.Error(err))
		}
		return booking, nil
	}

	n := email.BookingConfirmation(user.Email, bookingDetails(user, accommodation, booking))
	if err := s.mailer.Send(ctx, email.ModeBestEffort, n); err != nil {
		s.logger.Error("booking confirmation not queued", zap.String("booking", booking.ID.Hex()), zap.Error(err))
	}
	return booking, nil
}

// Cancel deletes a booking. When the owner is known the cancellation email is
// sent first and a failed send leaves the booking in place.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) error {
	id, err := ParseID("booking", bookingID)
	if err != nil {
		return err
	}

	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return notFound("Booking", err)
	}

	user, err := s.users.GetByID(ctx, booking.UserID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return s.delete(ctx, booking.ID)
	case err != nil:
		return err
	}

	accommodation, err := s.accommodations.GetByID(ctx, booking.AccommodationID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		accommodation = &models.Accommodation{}
	}

	n := email.BookingCancellation(user.Email, bookingDetails(user, accommodation, booking))
	if err := s.mailer.Send(ctx, email.ModeBlocking, n); err != nil {
		return NotificationError{Msg: "Failed to send cancellation email", Err: err}
	}

	// The email is already out at this point; a failed delete is reported but
	// not compensated.
	return s.delete(ctx, booking.ID)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]models.BookingWithAccommodation, error) {
	id, err := ParseID("user", userID)
	if err != nil {
		return nil, err
	}
	return s.bookings.GetByUserID(ctx, id)
}

func (s *BookingService) delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete booking", zap.String("booking", id.Hex()), zap.Error(err))
		return ServerError{Msg: "Failed to delete booking", Err: err}
	}
	return nil
}

func bookingDetails(user *models.User, accommodation *models.Accommodation, booking *models.Booking) email.BookingDetails {
	return email.BookingDetails{
		Username:          user.Username,
		AccommodationName: accommodation.Name,
		Location:          accommodation.Location,
		NumberOfMembers:   booking.NumberOfMembers,
		CheckIn:           booking.CheckInDate,
		CheckOut:          booking.CheckOutDate,
		TotalPrice:        booking.TotalPrice,
	}
}
