package bookmarks

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
)

const (
	maxURLLength         = 2048
	maxTitleLength       = 500
	maxDescriptionLength = 5000
	maxTagNameLength     = 100
)

// CreateInput holds the request to save a URL.
type CreateInput struct {
	URL         string
	Title       string
	Description string
	FolderID    *uuid.UUID
	Tags        []string
}

// Validate checks create input constraints.
func (in *CreateInput) Validate(maxTags int) error {
	var errs []domain.FieldError

	errs = append(errs, validateURL(in.URL)...)
	if len(in.Title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("must be at most %d characters", maxTitleLength)})
	}
	if len(in.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("must be at most %d characters", maxDescriptionLength)})
	}
	errs = append(errs, validateTags(in.Tags, maxTags)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput patches a bookmark. Nil pointer fields are left untouched.
// Tags follows the same convention: nil leaves the tag links alone, a
// present slice (including an empty one) replaces them. ClearFolder detaches
// the bookmark from its folder; it cannot be combined with FolderID.
type UpdateInput struct {
	ID          uuid.UUID
	URL         *string
	Title       *string
	Description *string
	FolderID    *uuid.UUID
	ClearFolder bool
	Tags        *[]string
}

// Validate checks update input constraints.
func (in *UpdateInput) Validate(maxTags int) error {
	var errs []domain.FieldError

	if in.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "is required"})
	}
	if in.URL != nil {
		errs = append(errs, validateURL(*in.URL)...)
	}
	if in.Title != nil && len(*in.Title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("must be at most %d characters", maxTitleLength)})
	}
	if in.Description != nil && len(*in.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("must be at most %d characters", maxDescriptionLength)})
	}
	if in.FolderID != nil && in.ClearFolder {
		errs = append(errs, domain.FieldError{Field: "folderId", Message: "cannot set and clear the folder at once"})
	}
	if in.Tags != nil {
		errs = append(errs, validateTags(*in.Tags, maxTags)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// FindInput holds list filters. Zero values mean "no filter".
type FindInput struct {
	FolderID   *uuid.UUID
	IsFavorite *bool
	IsArchived *bool
	Search     *string
	TagNames   []string
	Page       int
	Limit      int
}

func (in *FindInput) toFilter() domain.BookmarkFilter {
	f := domain.BookmarkFilter{
		FolderID:   in.FolderID,
		IsFavorite: in.IsFavorite,
		IsArchived: in.IsArchived,
		Search:     in.Search,
		TagNames:   in.TagNames,
		Page:       in.Page,
		Limit:      in.Limit,
	}
	f.Normalize()
	return f
}

func validateURL(raw string) []domain.FieldError {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []domain.FieldError{{Field: "url", Message: "is required"}}
	}
	if len(raw) > maxURLLength {
		return []domain.FieldError{{Field: "url", Message: fmt.Sprintf("must be at most %d characters", maxURLLength)}}
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return []domain.FieldError{{Field: "url", Message: "must be an absolute URL"}}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return []domain.FieldError{{Field: "url", Message: "scheme must be http or https"}}
	}
	return nil
}

func validateTags(tags []string, maxTags int) []domain.FieldError {
	var errs []domain.FieldError
	if maxTags > 0 && len(tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: fmt.Sprintf("at most %d tags per request", maxTags)})
	}
	for i, tag := range tags {
		if len(tag) > maxTagNameLength {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("tags[%d]", i), Message: fmt.Sprintf("must be at most %d characters", maxTagNameLength)})
		}
	}
	return errs
}
