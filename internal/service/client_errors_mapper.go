// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-abroad-journal/internal/adapter"
	"github.com/MKhiriev/go-abroad-journal/internal/store"
)

// mapAdapterError translates transport errors into business errors. The
// original error stays in the chain, so adapter.ErrNetworkFailure still
// matches.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", store.ErrEntryNotFound, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	return err
}
