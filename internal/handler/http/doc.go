// Package http serves the users REST API under /api.
//
// Registration is open but rate limited per client IP. Profile changes,
// deletion and password changes need a bearer token whose subject is the
// user being changed. Every response passes through trace id, access log,
// gzip and optional HMAC integrity middleware. Service errors become status
// codes through the ordered table in statusFromError; a lockout answers 403
// with a Retry-After header.
package http
