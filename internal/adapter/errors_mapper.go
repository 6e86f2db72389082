// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx and a sentinel-wrapped error carrying the
// status text and response body otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	status := resp.Status()
	if status == "" {
		status = fmt.Sprintf("%d %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}
	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		status += ": " + body
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, status)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, status)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, status)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, status)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, status)
	default:
		return fmt.Errorf("%w: %s", ErrNetworkFailure, status)
	}
}

// transportError wraps a resty transport error so it matches
// [ErrNetworkFailure].
func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrNetworkFailure, op, err)
}
