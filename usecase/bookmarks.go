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

const (
	maxBookmarkTitleLength       = 300
	maxBookmarkDescriptionLength = 1000

	// DefaultBookmarkTitle is stored when the caller omits a title and
	// resolution yields nothing.
	DefaultBookmarkTitle = "Untitled Bookmark"
)

type BookmarksStore interface {
	Create(ctx context.Context, bookmark *model.Bookmark) error
	Find(ctx context.Context, opts repository.BookmarkSearchOptions) ([]*model.Bookmark, error)
	GetByID(ctx context.Context, bookmarkID, userID string) (*model.Bookmark, error)
	Update(ctx context.Context, bookmarkID, userID string, bookmark *model.Bookmark) (*model.Bookmark, error)
	Delete(ctx context.Context, bookmarkID, userID string) error
}

// TitleResolver derives a page title from a URL. Implementations never
// return an error; an empty string means no title was found.
type TitleResolver interface {
	Resolve(ctx context.Context, rawURL string) string
}

type BookmarkService struct {
	Store    BookmarksStore
	Resolver TitleResolver
}

func validateBookmark(bookmark *model.Bookmark) error {
	var messages []string

	bookmark.URL = strings.TrimSpace(bookmark.URL)
	if !utils.IsAbsoluteURL(bookmark.URL) {
		messages = append(messages, "Please provide a valid URL")
	}

	bookmark.Title = strings.TrimSpace(bookmark.Title)
	if bookmark.Title == "" {
		messages = append(messages, "Bookmark title is required")
	} else if utf8.RuneCountInString(bookmark.Title) > maxBookmarkTitleLength {
		messages = append(messages,
			fmt.Sprintf("Title cannot exceed %d characters", maxBookmarkTitleLength))
	}

	bookmark.Description = strings.TrimSpace(bookmark.Description)
	if utf8.RuneCountInString(bookmark.Description) > maxBookmarkDescriptionLength {
		messages = append(messages,
			fmt.Sprintf("Description cannot exceed %d characters", maxBookmarkDescriptionLength))
	}

	bookmark.Tags = NormalizeTags(bookmark.Tags)

	if len(messages) > 0 {
		return utils.NewValidationError(messages...)
	}
	return nil
}

func (svc *BookmarkService) List(ctx context.Context, opts ListOptions) (*dto.BookmarkListResponse, error) {
	searchOpts := repository.BookmarkSearchOptions{
		UserID:       opts.UserID,
		Query:        strings.TrimSpace(opts.Query),
		Tags:         SplitTagsParam(opts.Tags),
		FavoriteOnly: opts.Favorite == "true",
	}

	bookmarks, err := svc.Store.Find(ctx, searchOpts)
	if err != nil {
		return nil, err
	}

	favoriteCount := 0
	tagSets := make([][]string, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		if bookmark.IsFavorite {
			favoriteCount++
		}
		tagSets = append(tagSets, bookmark.Tags)
	}

	return &dto.BookmarkListResponse{
		Bookmarks:     bookmarks,
		TotalCount:    len(bookmarks),
		FavoriteCount: favoriteCount,
		Tags:          sortedDistinct(tagSets...),
	}, nil
}

func (svc *BookmarkService) Get(ctx context.Context, bookmarkID, userID string) (*model.Bookmark, error) {
	return svc.Store.GetByID(ctx, bookmarkID, userID)
}

// Create stores a new bookmark. When the caller omits the title, a single
// best-effort fetch of the page supplies one; the AutoFetched flag records
// that provenance. Resolution failure falls back to the default title and
// never fails the create.
func (svc *BookmarkService) Create(ctx context.Context, userID string, req *dto.BookmarkRequest) (*model.Bookmark, error) {
	bookmark := req.ToBookmark(userID)
	bookmark.URL = strings.TrimSpace(bookmark.URL)

	if strings.TrimSpace(bookmark.Title) == "" {
		if title := svc.Resolver.Resolve(ctx, bookmark.URL); title != "" {
			bookmark.Title = title
			bookmark.AutoFetched = true
			middleware.TrackTitleResolution("resolved")
		} else {
			bookmark.Title = DefaultBookmarkTitle
			bookmark.AutoFetched = false
			middleware.TrackTitleResolution("fallback")
		}
	}

	if err := validateBookmark(bookmark); err != nil {
		return nil, err
	}

	if err := svc.Store.Create(ctx, bookmark); err != nil {
		return nil, err
	}

	middleware.TrackResourceOperation("bookmark", "create")
	return bookmark, nil
}

func (svc *BookmarkService) Update(ctx context.Context, bookmarkID, userID string, req *dto.BookmarkRequest) (*model.Bookmark, error) {
	existing, err := svc.Store.GetByID(ctx, bookmarkID, userID)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(existing)
	if err := validateBookmark(existing); err != nil {
		return nil, err
	}

	updated, err := svc.Store.Update(ctx, bookmarkID, userID, existing)
	if err != nil {
		return nil, err
	}

	middleware.TrackResourceOperation("bookmark", "update")
	return updated, nil
}

func (svc *BookmarkService) Delete(ctx context.Context, bookmarkID, userID string) error {
	if err := svc.Store.Delete(ctx, bookmarkID, userID); err != nil {
		return err
	}

	middleware.TrackResourceOperation("bookmark", "delete")
	return nil
}
