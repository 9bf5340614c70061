package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestAddLike(t *testing.T) {
	mt := newMockT(t)
	id, userID := primitive.NewObjectID(), primitive.NewObjectID()

	mt.Run("adds only when absent", func(mt *mtest.T) {
		repo := NewDiscoveryRepository(mt.DB)
		mt.AddMockResponses(acknowledged(1))

		added, err := repo.AddLike(context.Background(), id, userID)
		if err != nil || !added {
			mt.Fatalf("expected like to be added, got %v %v", added, err)
		}

		stmt := element(mt, sent(mt, "update"), "updates", 0)
		expectObjectID(mt, stmt, id, "q", "_id")
		expectObjectID(mt, stmt, userID, "q", "likes", "$ne")
		expectObjectID(mt, stmt, userID, "u", "$addToSet", "likes")
	})

	mt.Run("no match means already liked or missing", func(mt *mtest.T) {
		repo := NewDiscoveryRepository(mt.DB)
		mt.AddMockResponses(acknowledged(0))

		added, err := repo.AddLike(context.Background(), id, userID)
		if err != nil || added {
			mt.Fatalf("expected no like, got %v %v", added, err)
		}
	})
}

func TestRemoveLike(t *testing.T) {
	mt := newMockT(t)
	id, userID := primitive.NewObjectID(), primitive.NewObjectID()

	mt.Run("removes only when present", func(mt *mtest.T) {
		repo := NewDiscoveryRepository(mt.DB)
		mt.AddMockResponses(acknowledged(1))

		removed, err := repo.RemoveLike(context.Background(), id, userID)
		if err != nil || !removed {
			mt.Fatalf("expected like to be removed, got %v %v", removed, err)
		}

		stmt := element(mt, sent(mt, "update"), "updates", 0)
		expectObjectID(mt, stmt, id, "q", "_id")
		expectObjectID(mt, stmt, userID, "q", "likes")
		expectObjectID(mt, stmt, userID, "u", "$pull", "likes")
	})

	mt.Run("no match means not liked or missing", func(mt *mtest.T) {
		repo := NewDiscoveryRepository(mt.DB)
		mt.AddMockResponses(acknowledged(0))

		removed, err := repo.RemoveLike(context.Background(), id, userID)
		if err != nil || removed {
			mt.Fatalf("expected nothing removed, got %v %v", removed, err)
		}
	})
}

func TestDiscoveryCreateStoresEmptyArrays(t *testing.T) {
	mt := newMockT(t)

	mt.Run("create", func(mt *mtest.T) {
		repo := NewDiscoveryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		d := &models.Discovery{UserID: primitive.NewObjectID(), Location: "Hampi"}
		if err := repo.Create(context.Background(), d); err != nil {
			mt.Fatalf("create: %v", err)
		}

		doc := element(mt, sent(mt, "insert"), "documents", 0)
		for _, field := range []string{"images", "likes", "comments"} {
			if doc.Lookup(field).Type != bson.TypeArray {
				mt.Fatalf("expected %s to be stored as an array, got %s", field, doc.Lookup(field).Type)
			}
		}
	})
}

func TestDiscoveryCommentWrites(t *testing.T) {
	mt := newMockT(t)
	id, commentID := primitive.NewObjectID(), primitive.NewObjectID()

	mt.Run("update targets the matched comment", func(mt *mtest.T) {
		repo := NewDiscoveryRepository(mt.DB)
		mt.AddMockResponses(acknowledged(1))

		if err := repo.UpdateComment(context.Background(), id, commentID, "edited"); err != nil {
			mt.Fatalf("update comment: %v", err)
		}
		stmt := element(mt, sent(mt, "update"), "updates", 0)
		expectObjectID(mt, stmt, commentID, "q", "comments._id")
		if got := stmt.Lookup("u", "$set", "comments.$.text").StringValue(); got != "edited" {
			mt.Fatalf("expected positional text update, got %s", stmt)
		}
	})

	mt.Run("missing comment", func(mt *mtest.T) {
		repo := NewDiscoveryRepository(mt.DB)
		mt.AddMockResponses(acknowledged(0))

		if err := repo.UpdateComment(context.Background(), id, commentID, "edited"); !errors.Is(err, ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	mt.Run("delete pulls by id", func(mt *mtest.T) {
		repo := NewDiscoveryRepository(mt.DB)
		mt.AddMockResponses(acknowledged(1))

		if err := repo.DeleteComment(context.Background(), id, commentID); err != nil {
			mt.Fatalf("delete comment: %v", err)
		}
		stmt := element(mt, sent(mt, "update"), "updates", 0)
		expectObjectID(mt, stmt, commentID, "u", "$pull", "comments", "_id")
	})
}

func TestDiscoveryDeleteMissing(t *testing.T) {
	mt := newMockT(t)

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewDiscoveryRepository(mt.DB)
		mt.AddMockResponses(acknowledged(0))

		if err := repo.Delete(context.Background(), primitive.NewObjectID()); !errors.Is(err, ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
