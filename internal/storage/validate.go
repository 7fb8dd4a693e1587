package storage

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gallery-app/internal/domain/artworks"
)

const minYear = 1900

// Non-negative decimal with at most two fraction digits, e.g. "0", "1250.50".
var priceRe = regexp.MustCompile(`^\d{1,8}(\.\d{1,2})?$`)

func validPrice(s string) bool {
	return priceRe.MatchString(s)
}

// validImageURL accepts a single reference or a JSON array of 1..MaxImages
// non-empty references.
func validImageURL(s string) error {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fmt.Errorf("required")
	}
	if !strings.HasPrefix(trimmed, "[") {
		return nil
	}
	var refs []string
	if err := json.Unmarshal([]byte(trimmed), &refs); err != nil {
		return fmt.Errorf("must be a URL or a JSON array of URLs")
	}
	if len(refs) == 0 {
		return fmt.Errorf("must contain at least one image")
	}
	if len(refs) > artworks.MaxImages {
		return fmt.Errorf("must contain at most %d images", artworks.MaxImages)
	}
	for _, r := range refs {
		if strings.TrimSpace(r) == "" {
			return fmt.Errorf("must not contain empty entries")
		}
	}
	return nil
}

func validateDimension(e *ValidationError, field string, v *int) {
	if v != nil && *v <= 0 {
		e.add(field, "must be a positive integer")
	}
}

func validateYear(e *ValidationError, v *int) {
	if v == nil {
		return
	}
	if *v < minYear || *v > time.Now().Year() {
		e.add("year", fmt.Sprintf("must be between %d and %d", minYear, time.Now().Year()))
	}
}

// Validate checks the creation invariants: title, price and imageUrl are
// required, everything else only when provided.
func (in CreateArtworkInput) Validate() error {
	e := &ValidationError{}

	if strings.TrimSpace(in.Title) == "" {
		e.add("title", "required")
	}
	switch {
	case strings.TrimSpace(in.Price) == "":
		e.add("price", "required")
	case !validPrice(in.Price):
		e.add("price", "must be a non-negative decimal")
	}
	if err := validImageURL(in.ImageURL); err != nil {
		e.add("imageUrl", err.Error())
	}
	validateDimension(e, "width", in.Width)
	validateDimension(e, "height", in.Height)
	validateYear(e, in.Year)

	return e.orNil()
}

// Validate checks only the fields present in the patch.
func (in UpdateArtworkInput) Validate() error {
	e := &ValidationError{}

	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		e.add("title", "must not be empty")
	}
	if in.Price != nil && !validPrice(*in.Price) {
		e.add("price", "must be a non-negative decimal")
	}
	if in.ImageURL != nil {
		if err := validImageURL(*in.ImageURL); err != nil {
			e.add("imageUrl", err.Error())
		}
	}
	validateDimension(e, "width", in.Width)
	validateDimension(e, "height", in.Height)
	validateYear(e, in.Year)

	return e.orNil()
}
