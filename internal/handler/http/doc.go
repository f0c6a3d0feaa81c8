// Package http implements the JSON/HTTP surface of the freight calculator.
//
// Handlers decode one of the caller payload shapes, check that the required
// fields are present and hand a [service.CalculationRequest] to the shipping
// service. Every route is served both at the root and under /api/shipping.
// Request tracing, access logging and panic recovery are applied by
// middleware before a handler runs.
package http
