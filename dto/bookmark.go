package dto

import (
	"main/model"
)

// BookmarkRequest is the payload for creating or updating a bookmark.
type BookmarkRequest struct {
	URL         *string   `json:"url"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	IsFavorite  *bool     `json:"is_favorite"`
}

func (r *BookmarkRequest) ToBookmark(userID string) *model.Bookmark {
	bookmark := &model.Bookmark{UserID: userID}
	r.ApplyTo(bookmark)
	return bookmark
}

func (r *BookmarkRequest) ApplyTo(bookmark *model.Bookmark) {
	if r.URL != nil {
		bookmark.URL = *r.URL
	}
	if r.Title != nil {
		bookmark.Title = *r.Title
	}
	if r.Description != nil {
		bookmark.Description = *r.Description
	}
	if r.Tags != nil {
		bookmark.Tags = *r.Tags
	}
	if r.IsFavorite != nil {
		bookmark.IsFavorite = *r.IsFavorite
	}
}

type BookmarkListResponse struct {
	Bookmarks     []*model.Bookmark
	TotalCount    int
	FavoriteCount int
	Tags          []string
}
