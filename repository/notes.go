package repository

import (
	"context"
	"errors"
	"time"

	"main/middleware"
	"main/model"
	"main/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "notemark")
	return &NotesRepo{
		MongoCollection: client.Database(dbName).Collection("notes"),
	}
}

// NoteSearchOptions carries the optional list filters. The zero value means
// owner scoping only.
type NoteSearchOptions struct {
	UserID       string
	Query        string
	Tags         []string
	FavoriteOnly bool
}

// filter builds a single predicate: every present clause is ANDed, and the
// owner scope is always included.
func (o NoteSearchOptions) filter() bson.M {
	filter := bson.M{"user_id": o.UserID}

	if o.Query != "" {
		filter["$text"] = bson.M{"$search": o.Query}
	}
	if len(o.Tags) > 0 {
		filter["tags"] = bson.M{"$in": o.Tags}
	}
	if o.FavoriteOnly {
		filter["is_favorite"] = true
	}

	return filter
}

// recencySort orders list results most recently modified first, for both
// collections.
func recencySort() bson.D {
	return bson.D{{Key: "updated_at", Value: -1}}
}

// Create inserts a new note, assigning its id and timestamps.
func (r *NotesRepo) Create(ctx context.Context, note *model.Note) error {
	timer := middleware.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	note.ID = uuid.NewString()
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	if _, err := r.MongoCollection.InsertOne(ctx, note); err != nil {
		return utils.NewInternalError(err)
	}
	return nil
}

// Find returns every note matching the search options, most recently
// modified first.
func (r *NotesRepo) Find(ctx context.Context, opts NoteSearchOptions) ([]*model.Note, error) {
	timer := middleware.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	findOpts := options.Find().SetSort(recencySort())

	cursor, err := r.MongoCollection.Find(ctx, opts.filter(), findOpts)
	if err != nil {
		return nil, utils.NewInternalError(err)
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, utils.NewInternalError(err)
	}
	return notes, nil
}

// GetByID retrieves a single note scoped to its owner. A note owned by a
// different user reports the same as one that does not exist.
func (r *NotesRepo) GetByID(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := middleware.TrackDBOperation("find_one", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": noteID, "user_id": userID}).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &utils.NotFoundError{Resource: "note"}
		}
		return nil, utils.NewInternalError(err)
	}
	return &note, nil
}

// Update replaces the mutable fields in one atomic find-and-update scoped to
// the owner. Last write wins.
func (r *NotesRepo) Update(ctx context.Context, noteID, userID string, note *model.Note) (*model.Note, error) {
	timer := middleware.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	note.UpdatedAt = time.Now()

	filter := bson.M{"_id": noteID, "user_id": userID}
	update := bson.M{"$set": bson.M{
		"title":       note.Title,
		"content":     note.Content,
		"tags":        note.Tags,
		"is_favorite": note.IsFavorite,
		"updated_at":  note.UpdatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &utils.NotFoundError{Resource: "note"}
		}
		return nil, utils.NewInternalError(err)
	}
	return &updated, nil
}

// Delete removes a note permanently, scoped to its owner.
func (r *NotesRepo) Delete(ctx context.Context, noteID, userID string) error {
	timer := middleware.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": noteID, "user_id": userID})
	if err != nil {
		return utils.NewInternalError(err)
	}
	if result.DeletedCount == 0 {
		return &utils.NotFoundError{Resource: "note"}
	}
	return nil
}
