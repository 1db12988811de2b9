package analyser

import (
	"github.com/streamlens/streamlens/internal/core/domain"
	cerrors "github.com/streamlens/streamlens/internal/core/errors"
)

// Frequency builds the dense per-second message count table. The returned
// slice is indexed by second and covers the contiguous range [0, lastTime]
// with zeroes for silent seconds.
func Frequency(messages []domain.Message) ([]int, error) {
	if len(messages) == 0 {
		return nil, cerrors.ErrEmptyMessages
	}

	last := messages[len(messages)-1].Time

	table := make([]int, last+1)
	for _, msg := range messages {
		table[msg.Time]++
	}

	return table, nil
}
