package analyser

import (
	cerrors "github.com/streamlens/streamlens/internal/core/errors"
)

// MovingAverage computes the sliding-window mean of the frequency table, one
// value per second. The window fills up from empty: the first window-1 values
// average fewer than window samples instead of being zero-padded. This ramp-up
// keeps early seconds comparable to the rest of the series.
func MovingAverage(frequency []int, window int) ([]float64, error) {
	if window <= 1 {
		return nil, cerrors.ErrWindowTooSmall
	}

	out := make([]float64, 0, len(frequency))
	buf := make([]int, 0, window)

	for _, count := range frequency {
		if len(buf) == window {
			buf = buf[1:]
		}

		buf = append(buf, count)

		sum := 0
		for _, v := range buf {
			sum += v
		}

		out = append(out, float64(sum)/float64(len(buf)))
	}

	return out, nil
}
