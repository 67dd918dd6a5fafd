// Identifier helpers

package util

import (
	"time"

	"github.com/google/uuid"
)

// NewRequestID returns a random id used to correlate relay log lines.
func NewRequestID() string {
	return uuid.NewString()
}

// NextTimestampID derives an id from the creation time in milliseconds.
// It never returns a value <= last, so ids stay unique when two saves land
// in the same millisecond.
func NextTimestampID(now time.Time, last int64) int64 {
	id := now.UnixMilli()
	if id <= last {
		id = last + 1
	}
	return id
}
