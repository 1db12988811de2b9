package analyser

import (
	"github.com/streamlens/streamlens/internal/core/domain"
)

// detectorState tracks the run accumulator of Detect. The zero value is the
// idle state; all fields are local to one Detect call so concurrent analyses
// never share detector state.
type detectorState struct {
	running      bool
	startTime    int
	initialValue float64
}

// Detect walks the trend annotation and turns every run of increasing signs
// into a candidate highlight. A run closes on the first non-increasing sign;
// candidates shorter than minDuration or with a negative frequency delta are
// discarded at that point. A run still open at the end of the annotation is
// dropped, never flushed. The result is ordered by start time.
func Detect(streamID string, annotation []int, smooth []float64, minDuration int) []*domain.Highlight {
	var (
		highlights []*domain.Highlight
		state      detectorState
	)

	for now, trend := range annotation {
		switch {
		case !state.running && trend == TrendUp:
			state = detectorState{running: true, startTime: now, initialValue: smooth[now]}

		case state.running && trend != TrendUp:
			start := state.startTime
			duration := now - start
			delta := smooth[now] - state.initialValue
			state = detectorState{}

			if duration < minDuration || delta < 0 {
				continue
			}

			highlights = append(highlights, &domain.Highlight{
				StreamID: streamID,
				Start:    start,
				Duration: duration,
				Delta:    delta,
			})
		}
	}

	return highlights
}
