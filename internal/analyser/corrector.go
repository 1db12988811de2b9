package analyser

import (
	"github.com/streamlens/streamlens/internal/core/domain"
)

// Correct filters spurious candidates out of the detector's output. The first
// highlight is dropped unconditionally whenever more than one exists: the
// moving average and smoothing kernel ramp up from empty buffers, so the
// opening run reflects warm-up rather than a real surge. The survivors are
// then filtered against the average duration divided by thresholdConstant.
// The input slice is never mutated; a fresh filtered slice is returned.
func Correct(highlights []*domain.Highlight, thresholdConstant float64) []*domain.Highlight {
	if len(highlights) == 0 {
		return nil
	}

	remaining := highlights
	if len(highlights) > 1 {
		remaining = highlights[1:]
	}

	total := 0
	for _, h := range remaining {
		total += h.Duration
	}

	avgDuration := float64(total) / float64(len(remaining))
	cutoff := avgDuration / thresholdConstant

	kept := make([]*domain.Highlight, 0, len(remaining))

	for _, h := range remaining {
		if float64(h.Duration) <= cutoff {
			continue
		}

		kept = append(kept, h)
	}

	return kept
}
