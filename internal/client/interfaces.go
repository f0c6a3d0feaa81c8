// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/freight-calculator/internal/logger"
	"github.com/MKhiriev/freight-calculator/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line args and returns when it finishes or
	// ctx is cancelled.
	Run(ctx context.Context, args []string) error
}

// ServicesFactory builds the service layer a command talks to. It is only
// called by commands that need the quote provider.
type ServicesFactory func(logger *logger.Logger) (*service.Services, error)
