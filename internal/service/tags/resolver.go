// Package tags materializes tag names into persisted tags, creating missing
// ones exactly once per (owner, name).
package tags

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/markstash/backend/internal/domain"
)

type tagRepo interface {
	GetByName(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Tag, error)
	Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error)
}

// Resolver maps tag names to persisted tags.
type Resolver struct {
	tags tagRepo
	log  *slog.Logger
}

// NewResolver creates a new tag Resolver.
func NewResolver(log *slog.Logger, tags tagRepo) *Resolver {
	return &Resolver{
		tags: tags,
		log:  log.With("service", "tags"),
	}
}

// Resolve returns one persisted tag per distinct trimmed non-empty name,
// preserving first-occurrence order. Names are matched case-sensitively.
// Missing tags are created with defaultColor. Resolve never deletes.
//
// The lookup-then-create pair is racy by nature: when a concurrent request
// creates the same name first, the unique violation is treated as "someone
// else just created it" and the lookup retried once. A second miss is an
// internal inconsistency and is surfaced.
func (r *Resolver) Resolve(ctx context.Context, ownerID uuid.UUID, names []string, defaultColor *string) ([]domain.Tag, error) {
	seen := make(map[string]struct{}, len(names))
	result := make([]domain.Tag, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		tag, err := r.resolveOne(ctx, ownerID, name, defaultColor)
		if err != nil {
			return nil, err
		}
		result = append(result, *tag)
	}

	return result, nil
}

func (r *Resolver) resolveOne(ctx context.Context, ownerID uuid.UUID, name string, defaultColor *string) (*domain.Tag, error) {
	existing, err := r.tags.GetByName(ctx, ownerID, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup tag %q: %w", name, err)
	}

	created, err := r.tags.Create(ctx, &domain.Tag{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    name,
		Color:   defaultColor,
	})
	if err == nil {
		r.log.InfoContext(ctx, "tag created",
			slog.String("owner_id", ownerID.String()),
			slog.String("name", name),
		)
		return created, nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("create tag %q: %w", name, err)
	}

	// Lost the create race; the tag must exist now.
	existing, err = r.tags.GetByName(ctx, ownerID, name)
	if err != nil {
		return nil, fmt.Errorf("tag %q vanished after unique violation: %w", name, err)
	}

	return existing, nil
}
