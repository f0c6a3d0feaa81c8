// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements freightctl, the command-line client of the
// freight calculator.
//
// It builds the same service stack as the HTTP server from environment
// configuration and exposes postal-code validation and quote calculation as
// cobra commands.
package client
