// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/go-abroad-journal/models"
)

const (
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldDate     = "date"
	FieldCategory = "category"
	FieldLocation = "location"
)

// EntryValidator checks drafts, patches and locations typed by the user.
type EntryValidator struct {
}

func NewEntryValidator() Validator {
	return &EntryValidator{}
}

func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EntryDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.EntryDraft:
		return v.validateDraft(ctx, *value, fields...)

	case models.EntryPatch:
		return v.validatePatch(ctx, value, fields...)
	case *models.EntryPatch:
		return v.validatePatch(ctx, *value, fields...)

	case models.Location:
		return validateLocation(value)
	case *models.Location:
		if value == nil {
			return nil
		}
		return validateLocation(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateDraft(_ context.Context, draft models.EntryDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldDate, FieldCategory, FieldLocation}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(draft.Title) {
				return ErrEmptyTitle
			}
		case FieldContent:
			if isBlank(draft.Content) {
				return ErrEmptyContent
			}
		case FieldDate:
			if _, err := time.Parse(models.DateLayout, draft.Date); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidDate, draft.Date)
			}
		case FieldCategory:
			if models.CategoryIndex(draft.Category) < 0 {
				return fmt.Errorf("%w: %q", ErrInvalidCategory, draft.Category)
			}
		case FieldLocation:
			if draft.Location != nil {
				if err := validateLocation(*draft.Location); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// validatePatch only checks the fields the patch sets.
func (v *EntryValidator) validatePatch(_ context.Context, patch models.EntryPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldCategory}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if patch.Title != nil && isBlank(*patch.Title) {
				return ErrEmptyTitle
			}
		case FieldContent:
			if patch.Content != nil && isBlank(*patch.Content) {
				return ErrEmptyContent
			}
		case FieldCategory:
			if patch.Category != nil && models.CategoryIndex(*patch.Category) < 0 {
				return fmt.Errorf("%w: %q", ErrInvalidCategory, *patch.Category)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func validateLocation(location models.Location) error {
	if math.IsNaN(location.Latitude) || location.Latitude < -90 || location.Latitude > 90 {
		return ErrInvalidLatitude
	}
	if math.IsNaN(location.Longitude) || location.Longitude < -180 || location.Longitude > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
