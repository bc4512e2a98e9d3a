package settings

import (
	"strings"

	"github.com/markstash/backend/internal/domain"
)

// UpdateInput holds a settings patch. Nil fields leave the stored value
// untouched; a present field replaces it wholesale, including an empty
// category list.
type UpdateInput struct {
	AIEnabled     *bool
	Categories    *[]string
	BrandColorMap *map[string]string
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Categories != nil {
		if len(*i.Categories) > 50 {
			errs = append(errs, domain.FieldError{Field: "categories", Message: "too many (max 50)"})
		}
		for _, c := range *i.Categories {
			if strings.TrimSpace(c) == "" {
				errs = append(errs, domain.FieldError{Field: "categories", Message: "empty category name"})
				break
			}
			if len(c) > 100 {
				errs = append(errs, domain.FieldError{Field: "categories", Message: "category too long (max 100)"})
				break
			}
		}
	}

	if i.BrandColorMap != nil {
		if len(*i.BrandColorMap) > 200 {
			errs = append(errs, domain.FieldError{Field: "brand_color_map", Message: "too many entries (max 200)"})
		}
		for k, v := range *i.BrandColorMap {
			if strings.TrimSpace(k) == "" {
				errs = append(errs, domain.FieldError{Field: "brand_color_map", Message: "empty domain key"})
				break
			}
			if len(v) > 32 {
				errs = append(errs, domain.FieldError{Field: "brand_color_map", Message: "color too long (max 32)"})
				break
			}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
