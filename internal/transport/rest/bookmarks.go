package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
	"github.com/markstash/backend/internal/service/bookmarks"
)

// bookmarksService defines the minimal interface needed by BookmarkHandler.
type bookmarksService interface {
	Create(ctx context.Context, input bookmarks.CreateInput) (*bookmarks.CreateResult, error)
	Get(ctx context.Context, bookmarkID uuid.UUID) (*domain.BookmarkView, error)
	Find(ctx context.Context, input bookmarks.FindInput) (*bookmarks.ListResult, error)
	Update(ctx context.Context, input bookmarks.UpdateInput) (*domain.BookmarkView, error)
	Delete(ctx context.Context, bookmarkID uuid.UUID) error
	ToggleFavorite(ctx context.Context, bookmarkID uuid.UUID) (*domain.BookmarkView, error)
	ToggleArchive(ctx context.Context, bookmarkID uuid.UUID) (*domain.BookmarkView, error)
	RecordVisit(ctx context.Context, bookmarkID uuid.UUID) error
}

// BookmarkHandler serves bookmark REST endpoints.
type BookmarkHandler struct {
	svc bookmarksService
	log *slog.Logger
}

// NewBookmarkHandler creates a BookmarkHandler.
func NewBookmarkHandler(svc bookmarksService, logger *slog.Logger) *BookmarkHandler {
	return &BookmarkHandler{svc: svc, log: logger.With("handler", "bookmarks")}
}

type createBookmarkRequest struct {
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	FolderID    *uuid.UUID `json:"folderId"`
	Tags        []string   `json:"tags"`
}

// updateBookmarkRequest keeps folderId raw so an explicit null (detach the
// folder) is distinguishable from an absent key (leave it alone).
type updateBookmarkRequest struct {
	URL         *string         `json:"url"`
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	FolderID    json.RawMessage `json:"folderId"`
	Tags        *[]string       `json:"tags"`
}

// folderPatch decodes the folderId field: absent leaves both results zero,
// null sets clear, a UUID string sets folderID.
func (req *updateBookmarkRequest) folderPatch() (folderID *uuid.UUID, clear bool, err error) {
	if len(req.FolderID) == 0 {
		return nil, false, nil
	}
	if string(req.FolderID) == "null" {
		return nil, true, nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(req.FolderID, &id); err != nil {
		return nil, false, domain.NewValidationError("folderId", "must be a UUID or null")
	}
	return &id, false, nil
}

type tagResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

type folderRefResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type bookmarkResponse struct {
	ID            string             `json:"id"`
	URL           string             `json:"url"`
	Domain        string             `json:"domain"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Category      *string            `json:"category,omitempty"`
	AITags        []string           `json:"aiTags"`
	Folder        *folderRefResponse `json:"folder,omitempty"`
	Tags          []tagResponse      `json:"tags"`
	IsFavorite    bool               `json:"isFavorite"`
	IsArchived    bool               `json:"isArchived"`
	VisitCount    int                `json:"visitCount"`
	LastVisitedAt *time.Time         `json:"lastVisitedAt,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

type suggestionResponse struct {
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

type createBookmarkResponse struct {
	bookmarkResponse
	SuggestedFolder *suggestionResponse `json:"suggestedFolder,omitempty"`
}

type pageMetaResponse struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type listBookmarksResponse struct {
	Data []bookmarkResponse `json:"data"`
	Meta pageMetaResponse   `json:"meta"`
}

// Create handles POST /api/bookmarks.
func (h *BookmarkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Create(r.Context(), bookmarks.CreateInput{
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		FolderID:    req.FolderID,
		Tags:        req.Tags,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := createBookmarkResponse{bookmarkResponse: toBookmarkResponse(result.Bookmark)}
	if result.Suggestion != nil {
		resp.SuggestedFolder = &suggestionResponse{
			Name:  result.Suggestion.Name,
			Color: result.Suggestion.Color,
		}
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Get handles GET /api/bookmarks/{id}.
func (h *BookmarkHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookmarkResponse(*view))
}

// List handles GET /api/bookmarks.
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseFindInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.Find(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	data := make([]bookmarkResponse, len(result.Data))
	for i, view := range result.Data {
		data[i] = toBookmarkResponse(view)
	}

	writeJSON(w, http.StatusOK, listBookmarksResponse{
		Data: data,
		Meta: pageMetaResponse{
			Total:      result.Meta.Total,
			Page:       result.Meta.Page,
			Limit:      result.Meta.Limit,
			TotalPages: result.Meta.TotalPages,
		},
	})
}

// Update handles PATCH /api/bookmarks/{id}.
func (h *BookmarkHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folderID, clearFolder, err := req.folderPatch()
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	view, err := h.svc.Update(r.Context(), bookmarks.UpdateInput{
		ID:          id,
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		FolderID:    folderID,
		ClearFolder: clearFolder,
		Tags:        req.Tags,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookmarkResponse(*view))
}

// Delete handles DELETE /api/bookmarks/{id}.
func (h *BookmarkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleFavorite handles POST /api/bookmarks/{id}/favorite.
func (h *BookmarkHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.ToggleFavorite)
}

// ToggleArchive handles POST /api/bookmarks/{id}/archive.
func (h *BookmarkHandler) ToggleArchive(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.ToggleArchive)
}

func (h *BookmarkHandler) toggle(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.BookmarkView, error)) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := op(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookmarkResponse(*view))
}

// RecordVisit handles POST /api/bookmarks/{id}/visit.
func (h *BookmarkHandler) RecordVisit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.RecordVisit(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseFindInput(r *http.Request) (bookmarks.FindInput, error) {
	q := r.URL.Query()
	var input bookmarks.FindInput

	if v := q.Get("folderId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return input, domain.NewValidationError("folderId", "must be a UUID")
		}
		input.FolderID = &id
	}
	for param, target := range map[string]**bool{
		"isFavorite": &input.IsFavorite,
		"isArchived": &input.IsArchived,
	} {
		if v := q.Get(param); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return input, domain.NewValidationError(param, "must be a boolean")
			}
			*target = &b
		}
	}
	if v := q.Get("search"); v != "" {
		input.Search = &v
	}
	if v := q.Get("tags"); v != "" {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				input.TagNames = append(input.TagNames, name)
			}
		}
	}
	for param, target := range map[string]*int{
		"page":  &input.Page,
		"limit": &input.Limit,
	} {
		if v := q.Get(param); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return input, domain.NewValidationError(param, "must be an integer")
			}
			*target = n
		}
	}

	return input, nil
}

func toBookmarkResponse(view domain.BookmarkView) bookmarkResponse {
	tags := make([]tagResponse, len(view.Tags))
	for i, tag := range view.Tags {
		tags[i] = tagResponse{ID: tag.ID.String(), Name: tag.Name, Color: tag.Color}
	}

	resp := bookmarkResponse{
		ID:            view.ID.String(),
		URL:           view.URL,
		Domain:        view.Domain,
		Title:         view.Title,
		Description:   view.Description,
		Category:      view.Category,
		AITags:        view.AITags,
		Tags:          tags,
		IsFavorite:    view.IsFavorite,
		IsArchived:    view.IsArchived,
		VisitCount:    view.VisitCount,
		LastVisitedAt: view.LastVisited,
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
	}
	if view.AITags == nil {
		resp.AITags = []string{}
	}
	if view.Folder != nil {
		resp.Folder = &folderRefResponse{
			ID:    view.Folder.ID.String(),
			Name:  view.Folder.Name,
			Color: view.Folder.Color,
		}
	}

	return resp
}
