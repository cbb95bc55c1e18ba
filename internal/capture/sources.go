package capture

import (
	"os"
	"strings"
)

// ScheduleSource re-reads the schedule file on every load so edits take
// effect without a restart. A failed read keeps the previous good schedule
// instead of silently resetting to empty; ok is false so the caller can log
// the failure. Before the first successful read the schedule is empty.
type ScheduleSource struct {
	path string
	last Schedule
}

// NewScheduleSource returns a source reading from path.
func NewScheduleSource(path string) *ScheduleSource {
	return &ScheduleSource{path: path}
}

// Load returns the current schedule and whether this read succeeded.
func (s *ScheduleSource) Load() (Schedule, bool) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return s.last, false
	}
	s.last = ParseSchedule(string(raw))
	return s.last, true
}

// EndpointSource re-reads the playlist API URL file on every load: a single
// line of text, trimmed. Same keep-previous semantics as ScheduleSource; an
// endpoint that has never loaded is empty, meaning "no valid endpoint this
// cycle".
type EndpointSource struct {
	path string
	last string
}

// NewEndpointSource returns a source reading from path.
func NewEndpointSource(path string) *EndpointSource {
	return &EndpointSource{path: path}
}

// Load returns the current endpoint URL and whether this read succeeded.
func (s *EndpointSource) Load() (string, bool) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return s.last, false
	}
	line, _, _ := strings.Cut(string(raw), "\n")
	s.last = strings.TrimSpace(line)
	return s.last, true
}
