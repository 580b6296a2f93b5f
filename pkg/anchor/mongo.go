package anchor

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists anchor ids in a MongoDB collection, one document per
// deck. Use this backend when decks themselves live in a Mongo-backed
// document store and the pinned anchor should travel with them.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore creates a store on the given collection.
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// anchorDoc is the collection document format.
type anchorDoc struct {
	DocID    string `bson:"_id"`
	ObjectID string `bson:"object_id"`
}

// Get returns the pinned anchor id for the document.
func (s *MongoStore) Get(ctx context.Context, docID string) (string, bool, error) {
	var doc anchorDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": docID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc.ObjectID, true, nil
}

// Set pins an anchor id, replacing any previous pin.
func (s *MongoStore) Set(ctx context.Context, docID, objectID string) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": docID},
		anchorDoc{DocID: docID, ObjectID: objectID},
		options.Replace().SetUpsert(true))
	return err
}

// Clear removes the pinned anchor.
func (s *MongoStore) Clear(ctx context.Context, docID string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": docID})
	return err
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
