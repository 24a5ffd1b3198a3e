package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const testUserID = "test-user"

type memNotesStore struct {
	notes map[string]*model.Note
}

func newMemNotesStore() *memNotesStore {
	return &memNotesStore{notes: make(map[string]*model.Note)}
}

func (s *memNotesStore) Create(ctx context.Context, note *model.Note) error {
	note.ID = uuid.NewString()
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now
	stored := *note
	s.notes[note.ID] = &stored
	return nil
}

func (s *memNotesStore) Find(ctx context.Context, opts repository.NoteSearchOptions) ([]*model.Note, error) {
	var result []*model.Note
	for _, note := range s.notes {
		if note.UserID != opts.UserID {
			continue
		}
		if opts.FavoriteOnly && !note.IsFavorite {
			continue
		}
		if len(opts.Tags) > 0 && !tagsIntersect(note.Tags, opts.Tags) {
			continue
		}
		copied := *note
		result = append(result, &copied)
	}
	return result, nil
}

func (s *memNotesStore) GetByID(ctx context.Context, noteID, userID string) (*model.Note, error) {
	note, ok := s.notes[noteID]
	if !ok || note.UserID != userID {
		return nil, &utils.NotFoundError{Resource: "note"}
	}
	copied := *note
	return &copied, nil
}

func (s *memNotesStore) Update(ctx context.Context, noteID, userID string, note *model.Note) (*model.Note, error) {
	existing, ok := s.notes[noteID]
	if !ok || existing.UserID != userID {
		return nil, &utils.NotFoundError{Resource: "note"}
	}
	updated := *note
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	s.notes[noteID] = &updated
	copied := updated
	return &copied, nil
}

func (s *memNotesStore) Delete(ctx context.Context, noteID, userID string) error {
	existing, ok := s.notes[noteID]
	if !ok || existing.UserID != userID {
		return &utils.NotFoundError{Resource: "note"}
	}
	delete(s.notes, noteID)
	return nil
}

func tagsIntersect(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func setupNotesRouter(store *memNotesStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	noteHandler := NewNoteHandler(&usecase.NoteService{Store: store})

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Next()
	})

	notes := router.Group("/api/notes")
	{
		notes.GET("", noteHandler.List)
		notes.GET("/:id", noteHandler.GetByID)
		notes.POST("", noteHandler.Create)
		notes.PUT("/:id", noteHandler.Update)
		notes.DELETE("/:id", noteHandler.Delete)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var response utils.Response
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	return response
}

func TestCreateNoteHandler(t *testing.T) {
	store := newMemNotesStore()
	router := setupNotesRouter(store)

	w := doJSON(t, router, http.MethodPost, "/api/notes",
		`{"title": "Test Note", "content": "Test Content", "tags": ["Test"]}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	response := parseResponse(t, w)
	if !response.Success {
		t.Error("Expected success true")
	}

	data, ok := response.Data.(map[string]interface{})
	if !ok {
		t.Fatal("Response missing data object")
	}
	for _, field := range []string{"id", "title", "content", "created_at", "updated_at"} {
		if _, exists := data[field]; !exists {
			t.Errorf("Response missing required field: %s", field)
		}
	}
	if title, _ := data["title"].(string); title != "Test Note" {
		t.Errorf("Expected title 'Test Note', got %v", data["title"])
	}
	if len(store.notes) != 1 {
		t.Errorf("Expected 1 stored note, got %d", len(store.notes))
	}
}

func TestCreateNoteHandlerValidation(t *testing.T) {
	store := newMemNotesStore()
	router := setupNotesRouter(store)

	w := doJSON(t, router, http.MethodPost, "/api/notes",
		`{"title": "", "content": ""}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}

	response := parseResponse(t, w)
	if response.Success {
		t.Error("Expected success false")
	}
	if response.Message != "Validation error" {
		t.Errorf("Expected 'Validation error' message, got %q", response.Message)
	}
	if len(response.Errors) != 2 {
		t.Errorf("Expected every violated rule reported, got %v", response.Errors)
	}
	if len(store.notes) != 0 {
		t.Error("Invalid note must not be stored")
	}
}

func TestGetNoteHandlerNotFound(t *testing.T) {
	router := setupNotesRouter(newMemNotesStore())

	w := doJSON(t, router, http.MethodGet, "/api/notes/missing-id", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", w.Code)
	}
	if response := parseResponse(t, w); response.Success {
		t.Error("Expected success false")
	}
}

func TestListNotesHandler(t *testing.T) {
	store := newMemNotesStore()
	router := setupNotesRouter(store)

	seed := []string{
		`{"title": "A", "content": "c", "tags": ["work"], "is_favorite": true}`,
		`{"title": "B", "content": "c", "tags": ["ideas"]}`,
		`{"title": "C", "content": "c", "tags": ["work", "ideas"]}`,
	}
	for _, body := range seed {
		if w := doJSON(t, router, http.MethodPost, "/api/notes", body); w.Code != http.StatusCreated {
			t.Fatalf("Seed create failed: %d", w.Code)
		}
	}

	tests := []struct {
		name      string
		path      string
		wantCount int
	}{
		{name: "All", path: "/api/notes", wantCount: 3},
		{name: "By Tag", path: "/api/notes?tags=work", wantCount: 2},
		{name: "By Tag Any", path: "/api/notes?tags=work,ideas", wantCount: 3},
		{name: "Favorites", path: "/api/notes?favorite=true", wantCount: 1},
		{name: "Favorite Not Literal True", path: "/api/notes?favorite=1", wantCount: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, tt.path, "")
			if w.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d", w.Code)
			}
			response := parseResponse(t, w)
			if response.Count == nil || *response.Count != tt.wantCount {
				t.Errorf("Expected count %d, got %v", tt.wantCount, response.Count)
			}
		})
	}
}

func TestListNotesHandlerEnvelopeShape(t *testing.T) {
	store := newMemNotesStore()
	router := setupNotesRouter(store)

	w := doJSON(t, router, http.MethodPost, "/api/notes",
		`{"title": "A", "content": "c", "tags": ["work"]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("Seed create failed: %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/notes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	response := parseResponse(t, w)

	// data is the bare record array; aggregates sit beside it
	records, ok := response.Data.([]interface{})
	if !ok {
		t.Fatalf("Expected data to be a JSON array, got %T", response.Data)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	record, ok := records[0].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected record object, got %T", records[0])
	}
	if title, _ := record["title"].(string); title != "A" {
		t.Errorf("Expected record title 'A', got %v", record["title"])
	}

	if response.Count == nil || *response.Count != 1 {
		t.Errorf("Expected count 1, got %v", response.Count)
	}
	if response.FavoriteCount == nil || *response.FavoriteCount != 0 {
		t.Errorf("Expected favorite_count 0, got %v", response.FavoriteCount)
	}
	if len(response.Tags) != 1 || response.Tags[0] != "work" {
		t.Errorf("Expected tags [work], got %v", response.Tags)
	}
}

func TestUpdateNoteHandler(t *testing.T) {
	store := newMemNotesStore()
	router := setupNotesRouter(store)

	w := doJSON(t, router, http.MethodPost, "/api/notes",
		`{"title": "Before", "content": "c"}`)
	created := parseResponse(t, w)
	id := created.Data.(map[string]interface{})["id"].(string)

	w = doJSON(t, router, http.MethodPut, "/api/notes/"+id, `{"is_favorite": true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data := parseResponse(t, w).Data.(map[string]interface{})
	if fav, _ := data["is_favorite"].(bool); !fav {
		t.Error("Expected is_favorite true after update")
	}
	if title, _ := data["title"].(string); title != "Before" {
		t.Errorf("Expected title preserved, got %v", data["title"])
	}

	// The change is visible on an immediate GET
	w = doJSON(t, router, http.MethodGet, "/api/notes/"+id, "")
	data = parseResponse(t, w).Data.(map[string]interface{})
	if fav, _ := data["is_favorite"].(bool); !fav {
		t.Error("Expected is_favorite true on subsequent GET")
	}
}

func TestDeleteNoteHandler(t *testing.T) {
	store := newMemNotesStore()
	router := setupNotesRouter(store)

	w := doJSON(t, router, http.MethodPost, "/api/notes",
		`{"title": "Doomed", "content": "c"}`)
	id := parseResponse(t, w).Data.(map[string]interface{})["id"].(string)

	w = doJSON(t, router, http.MethodDelete, "/api/notes/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/notes/"+id, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", w.Code)
	}
}

func TestNoteHandlerInvalidBody(t *testing.T) {
	router := setupNotesRouter(newMemNotesStore())

	w := doJSON(t, router, http.MethodPost, "/api/notes", `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if response := parseResponse(t, w); response.Message != "Invalid request body" {
		t.Errorf("Expected 'Invalid request body', got %q", response.Message)
	}
}
