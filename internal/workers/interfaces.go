// Package workers runs the background jobs of the users server next to its
// listeners. Today that is the lockout reporter, which periodically logs how
// many identifiers the governor tracks and how many are in cooldown.
package workers

import "context"

// Worker runs until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
