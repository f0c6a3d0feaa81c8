// Package server runs the HTTP transport of the freight calculator.
//
// It owns the listener lifecycle: startup, waiting for a termination signal
// and draining in-flight requests on shutdown.
package server
