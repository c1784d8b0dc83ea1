// Package server owns the listeners of the users service.
//
// NewServer binds the HTTP API and the gRPC health endpoint up front, so a
// busy port fails startup instead of the first request. RunServer serves
// until its context is cancelled or a listener fails, then drains both
// servers within a fixed deadline.
package server
