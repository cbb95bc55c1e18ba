package capture

import (
	"fmt"
	"path/filepath"
	"time"
)

// PeriodManager decides which combined-file target is open. It is a small
// state machine with two states: no active period, or in-period with a
// fixed target path. The target is rebuilt only when the resolved window
// changes value, so a wrap-around window keeps its opening-date file name
// across midnight.
type PeriodManager struct {
	outputDir string

	active bool
	window Window
	target string
}

// NewPeriodManager returns a manager that names targets under outputDir.
func NewPeriodManager(outputDir string) *PeriodManager {
	return &PeriodManager{outputDir: outputDir}
}

// Tick resolves the active window for now and returns the combined-file
// target to append to, or active=false when no window matches. The window
// transition always happens before the new target path exists, so no write
// can land in a stale period's file.
func (m *PeriodManager) Tick(schedule Schedule, now time.Time) (target string, active bool) {
	window, ok := schedule.CurrentWindow(TimeOfDayFrom(now))
	if !ok {
		m.active = false
		m.target = ""
		return "", false
	}
	if !m.active || window != m.window {
		m.active = true
		m.window = window
		m.target = targetPath(m.outputDir, window, now)
	}
	return m.target, true
}

// Window returns the active window. Only meaningful while active.
func (m *PeriodManager) Window() (Window, bool) {
	return m.window, m.active
}

// targetPath builds the combined-file name from the opening date and the
// window bounds: combined_<YYYYMMDD>_<HHMM>_<HHMM>.aac.
func targetPath(outputDir string, w Window, now time.Time) string {
	name := fmt.Sprintf("combined_%s_%s_%s.aac",
		now.Format("20060102"), w.Start.stamp(), w.End.stamp())
	return filepath.Join(outputDir, name)
}
