// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// ErrNetworkFailure covers transport errors and non-2xx responses.
var ErrNetworkFailure = errors.New("network failure")

var (
	ErrBadRequest          = fmt.Errorf("%w: bad request", ErrNetworkFailure)
	ErrUnauthorized        = fmt.Errorf("%w: unauthorized", ErrNetworkFailure)
	ErrNotFound            = fmt.Errorf("%w: not found", ErrNetworkFailure)
	ErrInternalServerError = fmt.Errorf("%w: internal server error", ErrNetworkFailure)
	ErrBadGateway          = fmt.Errorf("%w: bad gateway", ErrNetworkFailure)
	ErrMalformedResponse   = fmt.Errorf("%w: malformed response", ErrNetworkFailure)
)
