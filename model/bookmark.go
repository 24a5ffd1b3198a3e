package model

import (
	"time"
)

type Bookmark struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	URL         string    `bson:"url" json:"url"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Tags        []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	IsFavorite  bool      `bson:"is_favorite" json:"is_favorite"`
	Favicon     string    `bson:"favicon" json:"favicon"`
	AutoFetched bool      `bson:"auto_fetched" json:"auto_fetched"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
