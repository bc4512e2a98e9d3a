package categorize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
	"github.com/markstash/backend/pkg/ctxutil"
)

// Draft carries the bookmark fields the orchestrator consults.
type Draft struct {
	URL         string
	Title       string
	Description string
	Domain      string

	// FolderID is the explicit destination. When set, no AI folder logic
	// runs and the value passes through unchanged.
	FolderID *uuid.UUID
}

// Categorize loads the owner's settings, calls the AI collaborator when
// enabled, and resolves the destination folder. Collaborator failure is
// absorbed: the outcome then carries no category and no AI tags, never an
// error. Only the settings and folder storage paths can fail the call.
func (s *Service) Categorize(ctx context.Context, draft Draft) (*domain.CategorizationOutcome, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.settings.GetOrCreate(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	outcome := &domain.CategorizationOutcome{
		AITags:   []string{},
		FolderID: draft.FolderID,
		Settings: settings,
	}

	if s.ai != nil && settings.AIEnabled && len(settings.Categories) > 0 {
		result, aiErr := s.ai.Categorize(ctx, draft.URL, draft.Title, draft.Description, settings.Categories)
		switch {
		case aiErr == nil:
			if result.Category != "" {
				category := result.Category
				outcome.Category = &category
			}
			if result.Tags != nil {
				outcome.AITags = result.Tags
			}
		case errors.Is(aiErr, domain.ErrUnavailable):
			s.log.WarnContext(ctx, "categorization collaborator unavailable",
				slog.String("owner_id", ownerID.String()),
				slog.String("error", aiErr.Error()),
			)
		default:
			s.log.WarnContext(ctx, "categorization failed",
				slog.String("owner_id", ownerID.String()),
				slog.String("error", aiErr.Error()),
			)
		}
	}

	if err := s.resolveFolder(ctx, ownerID, draft, settings, outcome); err != nil {
		return nil, err
	}

	return outcome, nil
}

// resolveFolder fills FolderID or Suggestion. An explicit folder wins; an
// AI category maps to the existing folder of the same name if one exists,
// otherwise it becomes a suggestion carrying the domain's brand color.
func (s *Service) resolveFolder(ctx context.Context, ownerID uuid.UUID, draft Draft, settings *domain.UserSettings, outcome *domain.CategorizationOutcome) error {
	if draft.FolderID != nil || outcome.Category == nil {
		return nil
	}

	folder, err := s.folders.GetByName(ctx, ownerID, *outcome.Category)
	if err == nil {
		outcome.FolderID = &folder.ID
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("lookup folder %q: %w", *outcome.Category, err)
	}

	outcome.Suggestion = &domain.FolderSuggestion{
		Name:  *outcome.Category,
		Color: settings.BrandColorFor(draft.Domain),
	}

	return nil
}
