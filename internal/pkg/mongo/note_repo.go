package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NoteRepo interface {
	SaveNote(ctx context.Context, note *Note) error
	GetNotesByOwner(ctx context.Context, ownerID, entityID uint64) ([]*Note, error)
	GetNoteByID(ctx context.Context, id primitive.ObjectID) (*Note, error)
	DeleteNote(ctx context.Context, id primitive.ObjectID, ownerID uint64) (bool, error)
}

type noteRepoImpl struct {
	col *mongo.Collection
}

func NewNoteRepo(db *mongo.Database) NoteRepo {
	return &noteRepoImpl{
		col: db.Collection("notes"),
	}
}

func (s *noteRepoImpl) SaveNote(ctx context.Context, note *Note) error {
	res, err := s.col.InsertOne(ctx, note)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		note.ID = oid
	}
	return nil
}

// GetNotesByOwner lists the owner's notes on one entity, newest first.
func (s *noteRepoImpl) GetNotesByOwner(ctx context.Context, ownerID, entityID uint64) ([]*Note, error) {
	filter := bson.M{"owner_id": ownerID, "entity_id": entityID}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var notes []*Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}

	return notes, nil
}

func (s *noteRepoImpl) GetNoteByID(ctx context.Context, id primitive.ObjectID) (*Note, error) {
	var note Note
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

// DeleteNote removes the note only when it belongs to the caller; reports
// whether a document was actually deleted.
func (s *noteRepoImpl) DeleteNote(ctx context.Context, id primitive.ObjectID, ownerID uint64) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id, "owner_id": ownerID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
