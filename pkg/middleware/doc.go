// Package middleware provides HTTP middleware for the service's plain HTTP
// endpoints (metrics, health). The WebSocket connection itself is observed
// inside pkg/server; this package covers the request/response surface around
// it.
package middleware
