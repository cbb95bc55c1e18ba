package capture

import (
	"errors"
	"fmt"
	"time"
)

// TimeOfDay is a clock time expressed as minutes since midnight.
type TimeOfDay int

// TimeOfDayFrom extracts the time-of-day component of t.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// String formats the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// stamp formats the time as HHMM, the form used in combined-file names.
func (t TimeOfDay) stamp() string {
	return fmt.Sprintf("%02d%02d", int(t)/60, int(t)%60)
}

// Window is one schedule period. A window with Start > End wraps around
// midnight (e.g. 23:00-01:00).
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Wraps reports whether the window spans midnight.
func (w Window) Wraps() bool {
	return w.Start > w.End
}

// Contains reports whether now falls inside the window. Both boundaries
// are inclusive.
func (w Window) Contains(now TimeOfDay) bool {
	if w.Wraps() {
		return now >= w.Start || now <= w.End
	}
	return w.Start <= now && now <= w.End
}

// String formats the window as HH:MM-HH:MM.
func (w Window) String() string {
	return w.Start.String() + "-" + w.End.String()
}

// Schedule is the ordered set of capture windows. Order matters: when
// windows overlap, the first match wins.
type Schedule []Window

// SegmentID uniquely identifies one audio segment for dedup purposes.
// It is the timestamp token embedded in the segment file name.
type SegmentID string

// ErrMalformedSegmentRef is returned when a segment reference does not
// carry enough fields to extract a SegmentID. Callers skip the current
// cycle; the error is never fatal.
var ErrMalformedSegmentRef = errors.New("malformed segment reference")
