package capture

import (
	"testing"
)

func mustTime(t *testing.T, text string) TimeOfDay {
	t.Helper()
	tod, err := parseTimeOfDay(text)
	if err != nil {
		t.Fatalf("parseTimeOfDay(%q): %v", text, err)
	}
	return tod
}

func TestParseSchedule(t *testing.T) {
	raw := "09:00-10:00\n\n23:00-01:00\n"
	schedule := ParseSchedule(raw)
	if len(schedule) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(schedule))
	}
	if schedule[0].String() != "09:00-10:00" {
		t.Errorf("window 0: %s", schedule[0])
	}
	if schedule[1].String() != "23:00-01:00" {
		t.Errorf("window 1: %s", schedule[1])
	}
	if !schedule[1].Wraps() {
		t.Error("23:00-01:00 should wrap")
	}
}

func TestParseSchedule_malformed_lines_skipped(t *testing.T) {
	raw := "garbage\n9am-10am\n25:00-26:00\n09:61-10:00\n09:00-10:00\n09:0010:00\n"
	schedule := ParseSchedule(raw)
	if len(schedule) != 1 {
		t.Fatalf("expected 1 window, got %d", len(schedule))
	}
	if schedule[0].String() != "09:00-10:00" {
		t.Errorf("kept window: %s", schedule[0])
	}
}

func TestParseSchedule_empty(t *testing.T) {
	if got := ParseSchedule(""); len(got) != 0 {
		t.Errorf("expected empty schedule, got %v", got)
	}
}

func TestCurrentWindow_normal(t *testing.T) {
	schedule := ParseSchedule("09:00-10:00")

	w, ok := schedule.CurrentWindow(mustTime(t, "09:30"))
	if !ok {
		t.Fatal("09:30 should match 09:00-10:00")
	}
	if w.String() != "09:00-10:00" {
		t.Errorf("matched window: %s", w)
	}

	if _, ok := schedule.CurrentWindow(mustTime(t, "10:01")); ok {
		t.Error("10:01 should not match 09:00-10:00")
	}
	if _, ok := schedule.CurrentWindow(mustTime(t, "08:59")); ok {
		t.Error("08:59 should not match 09:00-10:00")
	}
}

func TestCurrentWindow_boundaries_inclusive(t *testing.T) {
	schedule := ParseSchedule("09:00-10:00")
	if _, ok := schedule.CurrentWindow(mustTime(t, "09:00")); !ok {
		t.Error("start boundary should match")
	}
	if _, ok := schedule.CurrentWindow(mustTime(t, "10:00")); !ok {
		t.Error("end boundary should match")
	}
}

func TestCurrentWindow_wraparound(t *testing.T) {
	schedule := ParseSchedule("23:00-01:00")

	if _, ok := schedule.CurrentWindow(mustTime(t, "00:15")); !ok {
		t.Error("00:15 should match wrap-around 23:00-01:00")
	}
	if _, ok := schedule.CurrentWindow(mustTime(t, "23:30")); !ok {
		t.Error("23:30 should match wrap-around 23:00-01:00")
	}
	if _, ok := schedule.CurrentWindow(mustTime(t, "23:00")); !ok {
		t.Error("wrap start boundary should match")
	}
	if _, ok := schedule.CurrentWindow(mustTime(t, "01:00")); !ok {
		t.Error("wrap end boundary should match")
	}
	if _, ok := schedule.CurrentWindow(mustTime(t, "12:00")); ok {
		t.Error("12:00 should not match wrap-around 23:00-01:00")
	}
}

func TestCurrentWindow_empty_schedule(t *testing.T) {
	var schedule Schedule
	if _, ok := schedule.CurrentWindow(mustTime(t, "12:00")); ok {
		t.Error("empty schedule should never match")
	}
}

func TestCurrentWindow_first_match_wins(t *testing.T) {
	schedule := ParseSchedule("09:00-12:00\n10:00-11:00")
	w, ok := schedule.CurrentWindow(mustTime(t, "10:30"))
	if !ok {
		t.Fatal("10:30 should match")
	}
	if w.String() != "09:00-12:00" {
		t.Errorf("expected first listed window to win, got %s", w)
	}
}
