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

type BookmarksRepo struct {
	MongoCollection *mongo.Collection
}

func GetBookmarksRepo(client *mongo.Client) *BookmarksRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "notemark")
	return &BookmarksRepo{
		MongoCollection: client.Database(dbName).Collection("bookmarks"),
	}
}

type BookmarkSearchOptions struct {
	UserID       string
	Query        string
	Tags         []string
	FavoriteOnly bool
}

func (o BookmarkSearchOptions) filter() bson.M {
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

// Create inserts a new bookmark. The store's unique (user_id, url) index is
// the duplicate-URL authority; its duplicate-key signal is translated here.
func (r *BookmarksRepo) Create(ctx context.Context, bookmark *model.Bookmark) error {
	timer := middleware.TrackDBOperation("insert", "bookmarks")
	defer timer.ObserveDuration()

	bookmark.ID = uuid.NewString()
	now := time.Now()
	bookmark.CreatedAt = now
	bookmark.UpdatedAt = now

	if _, err := r.MongoCollection.InsertOne(ctx, bookmark); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &utils.DuplicateResourceError{
				Message: "You already have a bookmark with this URL",
			}
		}
		return utils.NewInternalError(err)
	}
	return nil
}

func (r *BookmarksRepo) Find(ctx context.Context, opts BookmarkSearchOptions) ([]*model.Bookmark, error) {
	timer := middleware.TrackDBOperation("find", "bookmarks")
	defer timer.ObserveDuration()

	findOpts := options.Find().SetSort(recencySort())

	cursor, err := r.MongoCollection.Find(ctx, opts.filter(), findOpts)
	if err != nil {
		return nil, utils.NewInternalError(err)
	}
	defer cursor.Close(ctx)

	bookmarks := []*model.Bookmark{}
	if err := cursor.All(ctx, &bookmarks); err != nil {
		return nil, utils.NewInternalError(err)
	}
	return bookmarks, nil
}

func (r *BookmarksRepo) GetByID(ctx context.Context, bookmarkID, userID string) (*model.Bookmark, error) {
	timer := middleware.TrackDBOperation("find_one", "bookmarks")
	defer timer.ObserveDuration()

	var bookmark model.Bookmark
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": bookmarkID, "user_id": userID}).Decode(&bookmark)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &utils.NotFoundError{Resource: "bookmark"}
		}
		return nil, utils.NewInternalError(err)
	}
	return &bookmark, nil
}

func (r *BookmarksRepo) Update(ctx context.Context, bookmarkID, userID string, bookmark *model.Bookmark) (*model.Bookmark, error) {
	timer := middleware.TrackDBOperation("update", "bookmarks")
	defer timer.ObserveDuration()

	bookmark.UpdatedAt = time.Now()

	filter := bson.M{"_id": bookmarkID, "user_id": userID}
	update := bson.M{"$set": bson.M{
		"url":          bookmark.URL,
		"title":        bookmark.Title,
		"description":  bookmark.Description,
		"tags":         bookmark.Tags,
		"is_favorite":  bookmark.IsFavorite,
		"favicon":      bookmark.Favicon,
		"auto_fetched": bookmark.AutoFetched,
		"updated_at":   bookmark.UpdatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.Bookmark
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &utils.NotFoundError{Resource: "bookmark"}
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, &utils.DuplicateResourceError{
				Message: "You already have a bookmark with this URL",
			}
		}
		return nil, utils.NewInternalError(err)
	}
	return &updated, nil
}

func (r *BookmarksRepo) Delete(ctx context.Context, bookmarkID, userID string) error {
	timer := middleware.TrackDBOperation("delete", "bookmarks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": bookmarkID, "user_id": userID})
	if err != nil {
		return utils.NewInternalError(err)
	}
	if result.DeletedCount == 0 {
		return &utils.NotFoundError{Resource: "bookmark"}
	}
	return nil
}
