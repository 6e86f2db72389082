// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract of the proxy's transport server.
type Server interface {
	// RunServer serves requests until ctx is done or a stop signal arrives,
	// then shuts down gracefully. It returns nil after a clean shutdown.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting requests and waits for in-flight ones until
	// ctx expires.
	Shutdown(ctx context.Context) error
}
