// Package config loads the settings of the users server and its CLI client.
//
// The server merges three sources with mergo, later ones overriding non-zero
// fields of earlier ones: environment variables, command-line flags, then the
// JSON file named by CONFIG or -c. Whatever is still zero gets a default, for
// example a 30 minute lockout cooldown, and the result is validated before
// [GetStructuredConfig] returns it. The lockout threshold is optional rather
// than zero-valued: any source that sets it wins, including an explicit 0, and
// only an unset threshold falls back to 5.
//
// The client reads CLIENT_-prefixed variables and applies its flags on top,
// see [GetClientConfig].
package config
