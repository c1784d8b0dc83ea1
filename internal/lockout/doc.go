// Package lockout implements the registration lockout governor: a
// process-wide, in-memory table of failure counters keyed by identifier
// (an email address in practice) that opens a fixed cooldown window once the
// number of failures exceeds a threshold.
//
// Records are created lazily on the first failure and never deleted. A
// cooldown is never extended by failures that land inside it. The first
// failure after the window has expired starts a new series at count 1.
//
// All methods are safe for concurrent use. Access to the table is guarded by
// one mutex and every record has its own mutex, so failures for different
// identifiers do not contend beyond the map lookup.
package lockout
