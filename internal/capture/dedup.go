package capture

// Tracker remembers which segment ids have already been combined during
// this process run. Pure in-memory set semantics: O(1) membership, no
// eviction, never persisted. The set grows for the life of the process,
// an accepted trade-off given expected run durations.
type Tracker struct {
	seen map[SegmentID]struct{}
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[SegmentID]struct{})}
}

// Processed reports whether id has already been combined.
func (t *Tracker) Processed(id SegmentID) bool {
	_, ok := t.seen[id]
	return ok
}

// Mark records id as combined. Callers must only mark after a successful
// append, so a failed segment stays eligible for retry next cycle.
func (t *Tracker) Mark(id SegmentID) {
	t.seen[id] = struct{}{}
}

// Len returns the number of tracked ids. Used for metrics.
func (t *Tracker) Len() int {
	return len(t.seen)
}
