package capture

import (
	"context"
	"log/slog"
	"time"

	"radio-capture/internal/platform/metrics"
)

// Recorder drives the capture loop: each cycle it reloads configuration,
// resolves the active schedule period, discovers the newest playlist
// segment, and appends its bytes to the period's combined file. All state
// (the processed-set, the open target) is owned by the single loop
// goroutine; no locking is needed.
type Recorder struct {
	fetcher  *Fetcher
	combiner Combiner
	periods  *PeriodManager
	schedule *ScheduleSource
	endpoint *EndpointSource
	tracker  *Tracker

	log *slog.Logger
	met *metrics.Metrics

	lastTarget string
}

// NewRecorder wires a recorder from its collaborators. The processed-set is
// created here and lives for the whole run; it is deliberately never
// cleared on period change, so a segment id is appended at most once across
// all combined files this process produces. Metrics may be nil to disable
// recording (e.g. in tests).
func NewRecorder(fetcher *Fetcher, combiner Combiner, periods *PeriodManager, schedule *ScheduleSource, endpoint *EndpointSource, log *slog.Logger, met *metrics.Metrics) *Recorder {
	return &Recorder{
		fetcher:  fetcher,
		combiner: combiner,
		periods:  periods,
		schedule: schedule,
		endpoint: endpoint,
		tracker:  NewTracker(),
		log:      log,
		met:      met,
	}
}

// ProcessedCount returns the size of the processed-set. Used for metrics.
func (r *Recorder) ProcessedCount() int {
	return r.tracker.Len()
}

// Run executes one cycle immediately, then one per interval until ctx is
// cancelled. Cycles are fully sequential; a slow network call delays the
// next tick rather than overlapping it.
func (r *Recorder) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.RunCycle(ctx, time.Now())
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			r.RunCycle(ctx, now)
		}
	}
}

// RunCycle performs one fetch-and-combine cycle at the given wall-clock
// time. No failure is fatal: every error path logs, leaves the segment
// unmarked, and lets the next tick retry.
func (r *Recorder) RunCycle(ctx context.Context, now time.Time) {
	if r.met != nil {
		r.met.IncCycles()
	}

	schedule, ok := r.schedule.Load()
	if !ok {
		r.log.Warn("schedule reload failed, keeping previous", slog.Int("windows", len(schedule)))
		if r.met != nil {
			r.met.IncConfigReloadFailures()
		}
	}
	apiURL, ok := r.endpoint.Load()
	if !ok {
		r.log.Warn("endpoint reload failed, keeping previous")
		if r.met != nil {
			r.met.IncConfigReloadFailures()
		}
	}

	target, active := r.periods.Tick(schedule, now)
	if r.met != nil {
		r.met.SetPeriodActive(active)
	}
	if !active {
		r.log.Info("no active period, waiting")
		r.lastTarget = ""
		return
	}
	if target != r.lastTarget {
		window, _ := r.periods.Window()
		r.log.Info("new period detected",
			slog.String("window", window.String()),
			slog.String("target", target))
		r.lastTarget = target
	}

	if apiURL == "" {
		r.log.Warn("no valid playlist endpoint this cycle")
		return
	}

	raw, err := r.fetcher.FetchPlaylist(ctx, apiURL)
	if err != nil {
		r.log.Error("playlist fetch failed", slog.String("error", err.Error()))
		if r.met != nil {
			r.met.IncFetchErrors()
		}
		return
	}

	refs := ParsePlaylist(raw)
	if len(refs) == 0 {
		r.log.Info("no segment references in playlist")
		return
	}

	// Upstream playlists are rolling windows exposing only recent
	// segments; only the newest reference is fetched per cycle.
	last := refs[len(refs)-1]
	id, err := ExtractSegmentID(last)
	if err != nil {
		r.log.Warn("skipping cycle", slog.String("ref", last), slog.String("error", err.Error()))
		return
	}
	if r.tracker.Processed(id) {
		r.log.Debug("segment already combined", slog.String("segment_id", string(id)))
		return
	}

	baseURL, err := BaseURL(apiURL)
	if err != nil {
		r.log.Error("bad playlist endpoint", slog.String("api_url", apiURL), slog.String("error", err.Error()))
		return
	}
	data, err := r.fetcher.FetchSegment(ctx, baseURL, last)
	if err != nil {
		r.log.Error("segment fetch failed", slog.String("error", err.Error()))
		if r.met != nil {
			r.met.IncFetchErrors()
		}
		return
	}

	if err := r.combiner.Append(target, data); err != nil {
		// Not marked processed: the same segment is retried next cycle.
		r.log.Error("combine append failed", slog.String("error", err.Error()))
		if r.met != nil {
			r.met.IncAppendErrors()
		}
		return
	}
	r.tracker.Mark(id)
	if r.met != nil {
		r.met.IncSegmentsAppended()
		r.met.AddBytesAppended(len(data))
	}

	r.log.Info("segment appended",
		slog.String("segment_id", string(id)),
		slog.Int("bytes", len(data)),
		slog.String("target", target))
}
