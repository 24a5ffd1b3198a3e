package dto

import (
	"main/model"
)

// NoteRequest is the payload for creating or updating a note. Fields are
// pointers so an update can tell an omitted field from a zero value.
type NoteRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Tags       *[]string `json:"tags"`
	IsFavorite *bool     `json:"is_favorite"`
}

// ToNote builds a fresh note from a create payload.
func (r *NoteRequest) ToNote(userID string) *model.Note {
	note := &model.Note{UserID: userID}
	r.ApplyTo(note)
	return note
}

// ApplyTo overwrites the fields present in the request, leaving the rest of
// the stored document untouched.
func (r *NoteRequest) ApplyTo(note *model.Note) {
	if r.Title != nil {
		note.Title = *r.Title
	}
	if r.Content != nil {
		note.Content = *r.Content
	}
	if r.Tags != nil {
		note.Tags = *r.Tags
	}
	if r.IsFavorite != nil {
		note.IsFavorite = *r.IsFavorite
	}
}

// NoteListResponse carries the matching notes plus the aggregates the list
// endpoint reports alongside them.
type NoteListResponse struct {
	Notes         []*model.Note
	TotalCount    int
	FavoriteCount int
	Tags          []string
}
