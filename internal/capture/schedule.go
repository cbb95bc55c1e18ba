package capture

import (
	"strconv"
	"strings"
)

// ParseSchedule reads a schedule definition: one "HH:MM-HH:MM" window per
// line, in 24-hour form. Malformed lines are skipped, not fatal, so a bad
// edit to the schedule file degrades the schedule instead of emptying it
// with an error.
func ParseSchedule(raw string) Schedule {
	var schedule Schedule
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		startText, endText, ok := strings.Cut(line, "-")
		if !ok {
			continue
		}
		start, err := parseTimeOfDay(startText)
		if err != nil {
			continue
		}
		end, err := parseTimeOfDay(endText)
		if err != nil {
			continue
		}
		schedule = append(schedule, Window{Start: start, End: end})
	}
	return schedule
}

// CurrentWindow resolves the window containing now. Windows are checked in
// schedule order and the first match wins; an empty schedule never matches.
func (s Schedule) CurrentWindow(now TimeOfDay) (Window, bool) {
	for _, w := range s {
		if w.Contains(now) {
			return w, true
		}
	}
	return Window{}, false
}

// parseTimeOfDay parses a strict HH:MM 24-hour clock time.
func parseTimeOfDay(text string) (TimeOfDay, error) {
	hourText, minuteText, ok := strings.Cut(strings.TrimSpace(text), ":")
	if !ok {
		return 0, strconv.ErrSyntax
	}
	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return 0, err
	}
	minute, err := strconv.Atoi(minuteText)
	if err != nil {
		return 0, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, strconv.ErrRange
	}
	return TimeOfDay(hour*60 + minute), nil
}
