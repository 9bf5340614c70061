package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"github.com/arunkarthik0712/travel-planner-backend/internal/repository"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/email"
	"github.com/arunkarthik0712/travel-planner-backend/pkg/jwt"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUsers struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{users: map[primitive.ObjectID]*models.User{}}
	for _, u := range users {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, address string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == address {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUsers) EmailExists(ctx context.Context, address string) (bool, error) {
	_, err := f.GetByEmail(ctx, address)
	return err == nil, nil
}

func (f *fakeUsers) Activate(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.IsActive = true
	return nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id primitive.ObjectID, hashed string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Password = hashed
	return nil
}

func (f *fakeUsers) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

type fakeAccommodations struct {
	items map[primitive.ObjectID]*models.Accommodation
}

func newFakeAccommodations(items ...*models.Accommodation) *fakeAccommodations {
	f := &fakeAccommodations{items: map[primitive.ObjectID]*models.Accommodation{}}
	for _, a := range items {
		if a.ID.IsZero() {
			a.ID = primitive.NewObjectID()
		}
		f.items[a.ID] = a
	}
	return f
}

func (f *fakeAccommodations) Create(_ context.Context, a *models.Accommodation) error {
	a.ID = primitive.NewObjectID()
	cp := *a
	f.items[a.ID] = &cp
	return nil
}

func (f *fakeAccommodations) GetByID(_ context.Context, id primitive.ObjectID) (*models.Accommodation, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccommodations) GetAll(context.Context) ([]models.Accommodation, error) {
	out := []models.Accommodation{}
	for _, a := range f.items {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAccommodations) Update(_ context.Context, a *models.Accommodation) error {
	if _, ok := f.items[a.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *a
	f.items[a.ID] = &cp
	return nil
}

type fakeBookings struct {
	items     map[primitive.ObjectID]*models.Booking
	deleteErr error
}

func newFakeBookings(items ...*models.Booking) *fakeBookings {
	f := &fakeBookings{items: map[primitive.ObjectID]*models.Booking{}}
	for _, b := range items {
		if b.ID.IsZero() {
			b.ID = primitive.NewObjectID()
		}
		f.items[b.ID] = b
	}
	return f
}

func (f *fakeBookings) Create(_ context.Context, b *models.Booking) error {
	b.ID = primitive.NewObjectID()
	cp := *b
	f.items[b.ID] = &cp
	return nil
}

func (f *fakeBookings) GetByID(_ context.Context, id primitive.ObjectID) (*models.Booking, error) {
	b, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookings) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]models.BookingWithAccommodation, error) {
	out := []models.BookingWithAccommodation{}
	for _, b := range f.items {
		if b.UserID == userID {
			out = append(out, models.BookingWithAccommodation{Booking: *b})
		}
	}
	return out, nil
}

func (f *fakeBookings) Delete(_ context.Context, id primitive.ObjectID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeDestinations struct {
	items []models.Destination
}

func (f *fakeDestinations) GetAll(_ context.Context, order models.SortOrder) ([]models.Destination, error) {
	out := append([]models.Destination(nil), f.items...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0; j-- {
			less := out[j].Price < out[j-1].Price
			if order == models.SortDesc {
				less = out[j].Price > out[j-1].Price
			}
			if !less {
				break
			}
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (f *fakeDestinations) GetPopular(_ context.Context, limit int64) ([]models.Destination, error) {
	out := []models.Destination{}
	for _, d := range f.items {
		if d.Popular && int64(len(out)) < limit {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDestinations) GetByID(_ context.Context, id primitive.ObjectID) (*models.Destination, error) {
	for _, d := range f.items {
		if d.ID == id {
			cp := d
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakePlans struct {
	items map[primitive.ObjectID]*models.TravelPlan
}

func newFakePlans(items ...*models.TravelPlan) *fakePlans {
	f := &fakePlans{items: map[primitive.ObjectID]*models.TravelPlan{}}
	for _, p := range items {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		f.items[p.ID] = p
	}
	return f
}

func (f *fakePlans) Create(_ context.Context, p *models.TravelPlan) error {
	p.ID = primitive.NewObjectID()
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakePlans) GetByID(_ context.Context, id primitive.ObjectID) (*models.TravelPlan, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePlans) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]models.TravelPlanWithDestination, error) {
	out := []models.TravelPlanWithDestination{}
	for _, p := range f.items {
		if p.UserID == userID {
			out = append(out, models.TravelPlanWithDestination{TravelPlan: *p})
		}
	}
	return out, nil
}

func (f *fakePlans) Update(_ context.Context, id primitive.ObjectID, patch models.TravelPlanPatch) (*models.TravelPlan, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Schedule != nil {
		p.Schedule = *patch.Schedule
	}
	if patch.Activities != nil {
		p.Activities = *patch.Activities
	}
	if patch.ToDoList != nil {
		p.ToDoList = *patch.ToDoList
	}
	if patch.Budget != nil {
		p.Budget = *patch.Budget
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		p.EndDate = *patch.EndDate
	}
	cp := *p
	return &cp, nil
}

func (f *fakePlans) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeDiscoveries struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]*models.Discovery
}

func newFakeDiscoveries() *fakeDiscoveries {
	return &fakeDiscoveries{items: map[primitive.ObjectID]*models.Discovery{}}
}

func (f *fakeDiscoveries) Create(_ context.Context, d *models.Discovery) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d.ID = primitive.NewObjectID()
	d.CreatedAt = time.Now()
	cp := *d
	f.items[d.ID] = &cp
	return nil
}

func (f *fakeDiscoveries) GetAll(context.Context) ([]models.Discovery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Discovery{}
	for _, d := range f.items {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDiscoveries) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]models.Discovery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Discovery{}
	for _, d := range f.items {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDiscoveries) GetByID(_ context.Context, id primitive.ObjectID) (*models.Discovery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *d
	cp.Comments = append([]models.Comment(nil), d.Comments...)
	cp.Likes = append([]primitive.ObjectID(nil), d.Likes...)
	return &cp, nil
}

func (f *fakeDiscoveries) Update(_ context.Context, id primitive.ObjectID, patch models.DiscoveryPatch) (*models.Discovery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Location != nil {
		d.Location = *patch.Location
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.Images != nil {
		d.Images = *patch.Images
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDiscoveries) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func likedBy(d *models.Discovery, userID primitive.ObjectID) bool {
	for _, id := range d.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

func (f *fakeDiscoveries) AddLike(_ context.Context, id, userID primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.items[id]
	if !ok || likedBy(d, userID) {
		return false, nil
	}
	d.Likes = append(d.Likes, userID)
	return true, nil
}

func (f *fakeDiscoveries) RemoveLike(_ context.Context, id, userID primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.items[id]
	if !ok || !likedBy(d, userID) {
		return false, nil
	}
	kept := d.Likes[:0]
	for _, l := range d.Likes {
		if l != userID {
			kept = append(kept, l)
		}
	}
	d.Likes = kept
	return true, nil
}

func (f *fakeDiscoveries) AddComment(_ context.Context, id primitive.ObjectID, c models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	d.Comments = append(d.Comments, c)
	return nil
}

func (f *fakeDiscoveries) UpdateComment(_ context.Context, id, commentID primitive.ObjectID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	c := d.Comment(commentID)
	if c == nil {
		return repository.ErrNotFound
	}
	c.Text = text
	return nil
}

func (f *fakeDiscoveries) DeleteComment(_ context.Context, id, commentID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	kept := d.Comments[:0]
	for _, c := range d.Comments {
		if c.ID != commentID {
			kept = append(kept, c)
		}
	}
	d.Comments = kept
	return nil
}

type sentNotification struct {
	Mode         email.Mode
	Notification email.Notification
}

// recordingNotifier records every send and fails them all when err is set.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
	err  error
}

func (r *recordingNotifier) Send(_ context.Context, mode email.Mode, n email.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sentNotification{Mode: mode, Notification: n})
	if r.err != nil && mode == email.ModeBlocking {
		return r.err
	}
	return nil
}

func (r *recordingNotifier) all() []sentNotification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sentNotification(nil), r.sent...)
}

// fakeTokens issues "<purpose>-<id>" tokens.
type fakeTokens struct{}

func (fakeTokens) GenerateToken(userID string, purpose jwt.Purpose) (string, error) {
	return string(purpose) + "-" + userID, nil
}

func (fakeTokens) ValidateToken(token string, purpose jwt.Purpose) (string, error) {
	prefix := string(purpose) + "-"
	if !strings.HasPrefix(token, prefix) {
		return "", errors.New("invalid token")
	}
	return strings.TrimPrefix(token, prefix), nil
}
