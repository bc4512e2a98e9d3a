package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserSettings holds per-owner categorization preferences. A row is lazily
// created with the defaults below on first access.
type UserSettings struct {
	OwnerID       uuid.UUID
	AIEnabled     bool
	Categories    []string
	BrandColorMap map[string]string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DefaultCategories is the label vocabulary offered to the categorizer for
// owners who never customized their settings.
var DefaultCategories = []string{
	"Video",
	"Music",
	"Development",
	"News",
	"Shopping",
	"Social",
	"Docs",
	"Tools",
	"Education",
}

// DefaultBrandColors maps domain substrings to accent colors used for folder
// suggestions and default tag colors.
var DefaultBrandColors = map[string]string{
	"youtube.com":  "#FF0000",
	"youtu.be":     "#FF0000",
	"spotify.com":  "#1DB954",
	"github.com":   "#111827",
	"twitter.com":  "#1DA1F2",
	"x.com":        "#111827",
	"notion.so":    "#111827",
	"medium.com":   "#000000",
	"reddit.com":   "#FF4500",
	"linkedin.com": "#0A66C2",
}

// DefaultSettings returns a fresh UserSettings with the default vocabulary
// and brand map. The slices/maps are copied so callers can mutate freely.
func DefaultSettings(ownerID uuid.UUID) UserSettings {
	categories := make([]string, len(DefaultCategories))
	copy(categories, DefaultCategories)

	colors := make(map[string]string, len(DefaultBrandColors))
	for k, v := range DefaultBrandColors {
		colors[k] = v
	}

	return UserSettings{
		OwnerID:       ownerID,
		AIEnabled:     true,
		Categories:    categories,
		BrandColorMap: colors,
	}
}

// BrandColorFor returns the color of the first brand-map key that is a
// substring of domain. Keys are scanned in sorted order so the match is
// deterministic; first match wins. Returns nil when nothing matches.
func (s UserSettings) BrandColorFor(domain string) *string {
	if domain == "" || len(s.BrandColorMap) == 0 {
		return nil
	}

	keys := make([]string, 0, len(s.BrandColorMap))
	for k := range s.BrandColorMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if k != "" && strings.Contains(domain, k) {
			color := s.BrandColorMap[k]
			return &color
		}
	}
	return nil
}
