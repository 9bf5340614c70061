package service

import (
	"context"
	"time"

	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	errAlreadyLiked = ValidationError{Msg: "You already liked this discovery"}
	errNotLiked     = ValidationError{Msg: "You have not liked this discovery"}
)

type DiscoveryService struct {
	discoveries DiscoveryStore
	users       UserStore
	now         func() time.Time
}

func NewDiscoveryService(discoveries DiscoveryStore, users UserStore) *DiscoveryService {
	return &DiscoveryService{discoveries: discoveries, users: users, now: time.Now}
}

func (s *DiscoveryService) Create(ctx context.Context, userID primitive.ObjectID, req models.CreateDiscoveryRequest) (*models.Discovery, error) {
	discovery := &models.Discovery{
		UserID:      userID,
		Location:    req.Location,
		Description: req.Description,
		Images:      toImages(req.Images),
	}
	if err := s.discoveries.Create(ctx, discovery); err != nil {
		return nil, err
	}
	return discovery, nil
}

func (s *DiscoveryService) Update(ctx context.Context, userID primitive.ObjectID, discoveryID string, req models.UpdateDiscoveryRequest) (*models.Discovery, error) {
	discovery, err := s.owned(ctx, userID, discoveryID, "Not authorized to update this discovery")
	if err != nil {
		return nil, err
	}

	patch := models.DiscoveryPatch{Location: req.Location, Description: req.Description}
	if req.Images != nil {
		images := toImages(*req.Images)
		patch.Images = &images
	}

	updated, err := s.discoveries.Update(ctx, discovery.ID, patch)
	if err != nil {
		return nil, notFound("Discovery", err)
	}
	return updated, nil
}

func (s *DiscoveryService) List(ctx context.Context) ([]models.DiscoveryView, error) {
	discoveries, err := s.discoveries.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, discoveries)
}

func (s *DiscoveryService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.DiscoveryView, error) {
	discoveries, err := s.discoveries.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, discoveries)
}

func (s *DiscoveryService) Get(ctx context.Context, discoveryID string) (*models.DiscoveryView, error) {
	discovery, err := s.get(ctx, discoveryID)
	if err != nil {
		return nil, err
	}

	views, err := s.views(ctx, []models.Discovery{*discovery})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Delete is restricted to the author.
func (s *DiscoveryService) Delete(ctx context.Context, userID primitive.ObjectID, discoveryID string) error {
	discovery, err := s.owned(ctx, userID, discoveryID, "Not authorized to delete this discovery")
	if err != nil {
		return err
	}
	return notFound("Discovery", s.discoveries.Delete(ctx, discovery.ID))
}

// Like adds userID to the likes set. A second like by the same user is
// rejected, including when two requests race.
func (s *DiscoveryService) Like(ctx context.Context, userID primitive.ObjectID, discoveryID string) (*models.LikeResponse, error) {
	id, err := ParseID("discovery", discoveryID)
	if err != nil {
		return nil, err
	}

	added, err := s.discoveries.AddLike(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !added {
		if _, err := s.discoveries.GetByID(ctx, id); err != nil {
			return nil, notFound("Discovery", err)
		}
		return nil, errAlreadyLiked
	}
	return &models.LikeResponse{IsLiked: true}, nil
}

func (s *DiscoveryService) Unlike(ctx context.Context, userID primitive.ObjectID, discoveryID string) (*models.LikeResponse, error) {
	id, err := ParseID("discovery", discoveryID)
	if err != nil {
		return nil, err
	}

	removed, err := s.discoveries.RemoveLike(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !removed {
		if _, err := s.discoveries.GetByID(ctx, id); err != nil {
			return nil, notFound("Discovery", err)
		}
		return nil, errNotLiked
	}
	return &models.LikeResponse{IsLiked: false}, nil
}

func (s *DiscoveryService) AddComment(ctx context.Context, userID primitive.ObjectID, discoveryID, text string) (*models.Comment, error) {
	id, err := ParseID("discovery", discoveryID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		Text:      text,
		UserID:    userID,
		CreatedAt: s.now(),
	}
	if err := s.discoveries.AddComment(ctx, id, comment); err != nil {
		return nil, notFound("Discovery", err)
	}
	return &comment, nil
}

func (s *DiscoveryService) UpdateComment(ctx context.Context, userID primitive.ObjectID, discoveryID, commentID, text string) (*models.Comment, error) {
	discovery, comment, err := s.authoredComment(ctx, userID, discoveryID, commentID, "Not authorized to update this comment")
	if err != nil {
		return nil, err
	}

	if err := s.discoveries.UpdateComment(ctx, discovery.ID, comment.ID, text); err != nil {
		return nil, notFound("Comment", err)
	}
	comment.Text = text
	return comment, nil
}

func (s *DiscoveryService) DeleteComment(ctx context.Context, userID primitive.ObjectID, discoveryID, commentID string) error {
	discovery, comment, err := s.authoredComment(ctx, userID, discoveryID, commentID, "Not authorized to delete this comment")
	if err != nil {
		return err
	}
	return notFound("Comment", s.discoveries.DeleteComment(ctx, discovery.ID, comment.ID))
}

func (s *DiscoveryService) get(ctx context.Context, discoveryID string) (*models.Discovery, error) {
	id, err := ParseID("discovery", discoveryID)
	if err != nil {
		return nil, err
	}

	discovery, err := s.discoveries.GetByID(ctx, id)
	if err != nil {
		return nil, notFound("Discovery", err)
	}
	return discovery, nil
}

func (s *DiscoveryService) owned(ctx context.Context, userID primitive.ObjectID, discoveryID, denied string) (*models.Discovery, error) {
	discovery, err := s.get(ctx, discoveryID)
	if err != nil {
		return nil, err
	}
	if discovery.UserID != userID {
		return nil, AuthorizationError{Msg: denied}
	}
	return discovery, nil
}

func (s *DiscoveryService) authoredComment(ctx context.Context, userID primitive.ObjectID, discoveryID, commentID, denied string) (*models.Discovery, *models.Comment, error) {
	cid, err := ParseID("comment", commentID)
	if err != nil {
		return nil, nil, err
	}
	discovery, err := s.get(ctx, discoveryID)
	if err != nil {
		return nil, nil, err
	}

	comment := discovery.Comment(cid)
	if comment == nil {
		return nil, nil, NotFoundError{Resource: "Comment"}
	}
	if comment.UserID != userID {
		return nil, nil, AuthorizationError{Msg: denied}
	}
	return discovery, comment, nil
}

// views resolves authors and commenters with one user lookup.
func (s *DiscoveryService) views(ctx context.Context, discoveries []models.Discovery) ([]models.DiscoveryView, error) {
	seen := map[primitive.ObjectID]bool{}
	var ids []primitive.ObjectID
	collect := func(id primitive.ObjectID) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, d := range discoveries {
		collect(d.UserID)
		for _, c := range d.Comments {
			collect(c.UserID)
		}
	}

	byID := make(map[primitive.ObjectID]*models.User, len(ids))
	if len(ids) > 0 {
		users, err := s.users.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range users {
			byID[users[i].ID] = &users[i]
		}
	}

	views := make([]models.DiscoveryView, 0, len(discoveries))
	for _, d := range discoveries {
		comments := make([]models.CommentView, 0, len(d.Comments))
		for _, c := range d.Comments {
			comments = append(comments, models.CommentView{
				ID:        c.ID,
				Text:      c.Text,
				User:      byID[c.UserID].Summary(),
				CreatedAt: c.CreatedAt,
			})
		}
		likes := d.Likes
		if likes == nil {
			likes = []primitive.ObjectID{}
		}
		images := d.Images
		if images == nil {
			images = []models.Image{}
		}
		views = append(views, models.DiscoveryView{
			ID:          d.ID,
			User:        byID[d.UserID].Summary(),
			Location:    d.Location,
			Description: d.Description,
			Images:      images,
			Likes:       likes,
			Comments:    comments,
			CreatedAt:   d.CreatedAt,
		})
	}
	return views, nil
}

func toImages(urls []string) []models.Image {
	images := make([]models.Image, 0, len(urls))
	for _, u := range urls {
		images = append(images, models.Image{URL: u})
	}
	return images
}
