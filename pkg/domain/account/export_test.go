package account

import "time"

// SetNow replaces the clock used for default creation dates and returns a
// function restoring it.
func SetNow(f func() time.Time) func() {
	prev := now
	now = f
	return func() { now = prev }
}
