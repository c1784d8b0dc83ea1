package lockout

//go:generate mockgen -source=interfaces.go -destination=../mock/lockout_governor_mock.go -package=mock

// Governor tracks failed attempts per identifier and decides whether the
// identifier is in a cooldown.
type Governor interface {
	// RecordFailure counts one failed attempt for id and returns the
	// resulting decision. The whole evaluation is atomic per id.
	RecordFailure(id string) Decision

	// IsLocked reports whether id currently has an active cooldown.
	// It does not count as an attempt.
	IsLocked(id string) bool

	// Reset zeroes the counter and clears the cooldown of id. The next
	// failure behaves like the first one ever recorded.
	Reset(id string)

	// Snapshot returns a copy of the record of id, or false if no failure
	// was ever recorded for it.
	Snapshot(id string) (Record, bool)

	// Stats summarizes the table.
	Stats() Stats
}
