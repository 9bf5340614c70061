package email

import "time"

// Mode selects how a caller waits on a send.
type Mode int

const (
	// ModeBestEffort sends in the background; failures are only logged.
	ModeBestEffort Mode = iota
	// ModeBlocking sends before returning and reports the outcome.
	ModeBlocking
)

func (m Mode) String() string {
	if m == ModeBlocking {
		return "blocking"
	}
	return "best-effort"
}

type Kind string

const (
	KindActivation          Kind = "activation"
	KindPasswordReset       Kind = "password-reset"
	KindBookingConfirmation Kind = "booking-confirmation"
	KindBookingCancellation Kind = "booking-cancellation"
	KindPlanCreated         Kind = "plan-created"
	KindPlanDeleted         Kind = "plan-deleted"
)

var subjects = map[Kind]string{
	KindActivation:          "Account Activation",
	KindPasswordReset:       "Password Reset Request",
	KindBookingConfirmation: "Booking Confirmation",
	KindBookingCancellation: "Booking Cancellation",
	KindPlanCreated:         "Travel Plan Created",
	KindPlanDeleted:         "Travel Plan Deleted",
}

func (k Kind) Subject() string {
	return subjects[k]
}

// Notification is one transactional email waiting to be rendered and sent.
type Notification struct {
	Kind Kind
	To   string
	Data interface{}
}

type LinkData struct {
	Username string
	Link     string
}

type BookingData struct {
	Username          string
	AccommodationName string
	Location          string
	NumberOfMembers   int
	CheckInDate       string
	CheckOutDate      string
	TotalPrice        float64
}

type PlanData struct {
	Username        string
	DestinationName string
	Schedule        string
	Activities      string
	ToDoList        string
	Budget          float64
	StartDate       string
	EndDate         string
}

const (
	bookingDateLayout = "1/2/2006"
	planDateLayout    = "Mon Jan 02 2006"
)

func Activation(to, username, link string) Notification {
	return Notification{Kind: KindActivation, To: to, Data: LinkData{Username: username, Link: link}}
}

func PasswordReset(to, username, link string) Notification {
	return Notification{Kind: KindPasswordReset, To: to, Data: LinkData{Username: username, Link: link}}
}

type BookingDetails struct {
	Username          string
	AccommodationName string
	Location          string
	NumberOfMembers   int
	CheckIn           time.Time
	CheckOut          time.Time
	TotalPrice        float64
}

func (d BookingDetails) data() BookingData {
	return BookingData{
		Username:          d.Username,
		AccommodationName: d.AccommodationName,
		Location:          d.Location,
		NumberOfMembers:   d.NumberOfMembers,
		CheckInDate:       d.CheckIn.Format(bookingDateLayout),
		CheckOutDate:      d.CheckOut.Format(bookingDateLayout),
		TotalPrice:        d.TotalPrice,
	}
}

func BookingConfirmation(to string, details BookingDetails) Notification {
	return Notification{Kind: KindBookingConfirmation, To: to, Data: details.data()}
}

func BookingCancellation(to string, details BookingDetails) Notification {
	return Notification{Kind: KindBookingCancellation, To: to, Data: details.data()}
}

type PlanDetails struct {
	Username        string
	DestinationName string
	Schedule        string
	Activities      string
	ToDoList        string
	Budget          float64
	StartDate       time.Time
	EndDate         time.Time
}

func (d PlanDetails) data() PlanData {
	return PlanData{
		Username:        d.Username,
		DestinationName: d.DestinationName,
		Schedule:        d.Schedule,
		Activities:      d.Activities,
		ToDoList:        d.ToDoList,
		Budget:          d.Budget,
		StartDate:       d.StartDate.Format(planDateLayout),
		EndDate:         d.EndDate.Format(planDateLayout),
	}
}

func PlanCreated(to string, details PlanDetails) Notification {
	return Notification{Kind: KindPlanCreated, To: to, Data: details.data()}
}

func PlanDeleted(to string, details PlanDetails) Notification {
	return Notification{Kind: KindPlanDeleted, To: to, Data: details.data()}
}
