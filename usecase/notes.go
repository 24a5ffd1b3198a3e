package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"main/dto"
	"main/middleware"
	"main/model"
	"main/repository"
	"main/utils"
)

const maxNoteTitleLength = 200

// NotesStore abstracts the persistence gateway so the service can be
// exercised without a live store.
type NotesStore interface {
	Create(ctx context.Context, note *model.Note) error
	Find(ctx context.Context, opts repository.NoteSearchOptions) ([]*model.Note, error)
	GetByID(ctx context.Context, noteID, userID string) (*model.Note, error)
	Update(ctx context.Context, noteID, userID string, note *model.Note) (*model.Note, error)
	Delete(ctx context.Context, noteID, userID string) error
}

type NoteService struct {
	Store NotesStore
}

// ListOptions carries the raw list query parameters. Favorite filters only
// when it is the literal string "true".
type ListOptions struct {
	UserID   string
	Query    string
	Tags     string
	Favorite string
}

// validateNote normalizes the note in place and collects every violated
// rule into a single ValidationError.
func validateNote(note *model.Note) error {
	var messages []string

	note.Title = strings.TrimSpace(note.Title)
	if note.Title == "" {
		messages = append(messages, "Note title is required")
	} else if utf8.RuneCountInString(note.Title) > maxNoteTitleLength {
		messages = append(messages,
			fmt.Sprintf("Title cannot exceed %d characters", maxNoteTitleLength))
	}

	note.Content = strings.TrimSpace(note.Content)
	if note.Content == "" {
		messages = append(messages, "Note content is required")
	}

	note.Tags = NormalizeTags(note.Tags)

	if len(messages) > 0 {
		return utils.NewValidationError(messages...)
	}
	return nil
}

// List returns every matching note plus the aggregates the filter UI needs:
// total count, favorite count, and the sorted distinct tag set.
func (svc *NoteService) List(ctx context.Context, opts ListOptions) (*dto.NoteListResponse, error) {
	searchOpts := repository.NoteSearchOptions{
		UserID:       opts.UserID,
		Query:        strings.TrimSpace(opts.Query),
		Tags:         SplitTagsParam(opts.Tags),
		FavoriteOnly: opts.Favorite == "true",
	}

	notes, err := svc.Store.Find(ctx, searchOpts)
	if err != nil {
		return nil, err
	}

	favoriteCount := 0
	tagSets := make([][]string, 0, len(notes))
	for _, note := range notes {
		if note.IsFavorite {
			favoriteCount++
		}
		tagSets = append(tagSets, note.Tags)
	}

	return &dto.NoteListResponse{
		Notes:         notes,
		TotalCount:    len(notes),
		FavoriteCount: favoriteCount,
		Tags:          sortedDistinct(tagSets...),
	}, nil
}

func (svc *NoteService) Get(ctx context.Context, noteID, userID string) (*model.Note, error) {
	return svc.Store.GetByID(ctx, noteID, userID)
}

func (svc *NoteService) Create(ctx context.Context, userID string, req *dto.NoteRequest) (*model.Note, error) {
	note := req.ToNote(userID)

	if err := validateNote(note); err != nil {
		return nil, err
	}

	if err := svc.Store.Create(ctx, note); err != nil {
		return nil, err
	}

	middleware.TrackResourceOperation("note", "create")
	return note, nil
}

// Update loads the owner's note, overwrites the fields present in the
// request, re-validates the merged document and persists it whole.
// Concurrent updates are not reconciled; the last write wins.
func (svc *NoteService) Update(ctx context.Context, noteID, userID string, req *dto.NoteRequest) (*model.Note, error) {
	existing, err := svc.Store.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(existing)
	if err := validateNote(existing); err != nil {
		return nil, err
	}

	updated, err := svc.Store.Update(ctx, noteID, userID, existing)
	if err != nil {
		return nil, err
	}

	middleware.TrackResourceOperation("note", "update")
	return updated, nil
}

func (svc *NoteService) Delete(ctx context.Context, noteID, userID string) error {
	if err := svc.Store.Delete(ctx, noteID, userID); err != nil {
		return err
	}

	middleware.TrackResourceOperation("note", "delete")
	return nil
}
