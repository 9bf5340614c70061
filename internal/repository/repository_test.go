package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

// acknowledged is a write reply reporting n matched documents.
func acknowledged(n int) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "n", Value: n}, bson.E{Key: "nModified", Value: n})
}

// sent returns the next command the client sent, checking its name.
func sent(mt *mtest.T, command string) bson.Raw {
	mt.Helper()
	ev := mt.GetStartedEvent()
	if ev == nil {
		mt.Fatalf("no %s command was sent", command)
	}
	if ev.CommandName != command {
		mt.Fatalf("expected %s command, got %s: %s", command, ev.CommandName, ev.Command)
	}
	return ev.Command
}

// element returns doc[key][i] as a document.
func element(mt *mtest.T, doc bson.Raw, key string, i int) bson.Raw {
	mt.Helper()
	values, err := doc.Lookup(key).Array().Values()
	if err != nil {
		mt.Fatalf("%s is not an array: %v", key, err)
	}
	if len(values) <= i {
		mt.Fatalf("expected at least %d entries in %s, got %d", i+1, key, len(values))
	}
	return values[i].Document()
}

func expectObjectID(mt *mtest.T, doc bson.Raw, want primitive.ObjectID, path ...string) {
	mt.Helper()
	got, ok := doc.Lookup(path...).ObjectIDOK()
	if !ok || got != want {
		mt.Fatalf("expected %v at %v, got %s", want, path, doc)
	}
}
