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

var errMissingOwnerEmail = ServerError{Msg: "User email not found"}

type TravelPlanService struct {
	plans        TravelPlanStore
	destinations DestinationStore
	users        UserStore
	mailer       Notifier
	logger       *zap.Logger
}

func NewTravelPlanService(plans TravelPlanStore, destinations DestinationStore, users UserStore, mailer Notifier, logger *zap.Logger) *TravelPlanService {
	return &TravelPlanService{
		plans:        plans,
		destinations: destinations,
		users:        users,
		mailer:       mailer,
		logger:       logger.Named("travel_plan"),
	}
}

func (s *TravelPlanService) Create(ctx context.Context, userID primitive.ObjectID, req models.CreateTravelPlanRequest) (*models.TravelPlanWithDestination, error) {
	destinationID, err := ParseID("destination", req.DestinationID)
	if err != nil {
		return nil, err
	}
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, ValidationError{Msg: "Invalid startDate", Err: err}
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, ValidationError{Msg: "Invalid endDate", Err: err}
	}
	if req.Budget == nil {
		return nil, ValidationError{Msg: "Budget is required"}
	}

	destination, err := s.destinations.GetByID(ctx, destinationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ValidationError{Msg: "Destination not found", Err: err}
		}
		return nil, err
	}

	plan := &models.TravelPlan{
		UserID:        userID,
		DestinationID: destination.ID,
		Schedule:      req.Schedule,
		Activities:    req.Activities,
		ToDoList:      req.ToDoList,
		Budget:        *req.Budget,
		StartDate:     startDate,
		EndDate:       endDate,
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}

	// No user, no email. The plan is kept either way.
	user, err := s.users.GetByID(ctx, userID)
	if err == nil {
		n := email.PlanCreated(user.Email, planDetails(user, destination, plan))
		if err := s.mailer.Send(ctx, email.ModeBestEffort, n); err != nil {
			s.logger.Error("plan created email not queued", zap.String("plan", plan.ID.Hex()), zap.Error(err))
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("user lookup for plan created email failed", zap.String("plan", plan.ID.Hex()), zap.Error(err))
	}

	return &models.TravelPlanWithDestination{TravelPlan: *plan, Destination: destination}, nil
}

func (s *TravelPlanService) Update(ctx context.Context, planID string, req models.UpdateTravelPlanRequest) (*models.TravelPlan, error) {
	id, err := ParseID("travel plan", planID)
	if err != nil {
		return nil, err
	}

	patch := models.TravelPlanPatch{
		Schedule:   req.Schedule,
		Activities: req.Activities,
		ToDoList:   req.ToDoList,
		Budget:     req.Budget,
	}
	if req.StartDate != nil {
		t, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			return nil, ValidationError{Msg: "Invalid startDate", Err: err}
		}
		patch.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := utils.ParseDate(*req.EndDate)
		if err != nil {
			return nil, ValidationError{Msg: "Invalid endDate", Err: err}
		}
		patch.EndDate = &t
	}

	plan, err := s.plans.Update(ctx, id, patch)
	if err != nil {
		return nil, notFound("Travel Plan", err)
	}
	return plan, nil
}

// Delete removes a plan only after the owner has been emailed. An owner
// without an email address makes the whole delete fail.
func (s *TravelPlanService) Delete(ctx context.Context, planID string) error {
	id, err := ParseID("travel plan", planID)
	if err != nil {
		return err
	}

	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return notFound("Travel Plan", err)
	}

	user, err := s.users.GetByID(ctx, plan.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errMissingOwnerEmail
		}
		return err
	}
	if user.Email == "" {
		return errMissingOwnerEmail
	}

	destination, err := s.destinations.GetByID(ctx, plan.DestinationID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		destination = &models.Destination{}
	}

	n := email.PlanDeleted(user.Email, planDetails(user, destination, plan))
	if err := s.mailer.Send(ctx, email.ModeBlocking, n); err != nil {
		if errors.Is(err, email.ErrRejected) {
			return NotificationError{Msg: "Failed to send confirmation email", Err: err}
		}
		return ServerError{Msg: "Server error", Err: err}
	}

	return notFound("Travel Plan", s.plans.Delete(ctx, plan.ID))
}

// ListByUser returns the plans of the authenticated user with destinations
// resolved.
func (s *TravelPlanService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.TravelPlanWithDestination, error) {
	return s.plans.GetByUserID(ctx, userID)
}

func planDetails(user *models.User, destination *models.Destination, plan *models.TravelPlan) email.PlanDetails {
	return email.PlanDetails{
		Username:        user.Username,
		DestinationName: destination.Name,
		Schedule:        plan.Schedule,
		Activities:      plan.Activities,
		ToDoList:        plan.ToDoList,
		Budget:          plan.Budget,
		StartDate:       plan.StartDate,
		EndDate:         plan.EndDate,
	}
}
