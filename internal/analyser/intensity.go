package analyser

import (
	"github.com/streamlens/streamlens/internal/core/domain"
	cerrors "github.com/streamlens/streamlens/internal/core/errors"
)

// NewIntensityScale validates and assembles the severity scale from its three
// parallel configuration lists. Constants must be ascending and unique.
func NewIntensityScale(levels []string, constants []float64, colors []string) ([]domain.Intensity, error) {
	if len(levels) != len(constants) || len(constants) != len(colors) {
		return nil, cerrors.ErrMismatchedListSizes
	}

	seen := make(map[float64]struct{}, len(constants))

	for i, c := range constants {
		if i > 0 && c < constants[i-1] {
			return nil, cerrors.ErrConstantsNotAscending
		}

		if _, ok := seen[c]; ok {
			return nil, cerrors.ErrConstantsNotUnique
		}

		seen[c] = struct{}{}
	}

	scale := make([]domain.Intensity, len(levels))
	for i := range levels {
		scale[i] = domain.Intensity{Level: levels[i], Constant: constants[i], Color: colors[i]}
	}

	return scale, nil
}

// ApplyIntensities assigns each highlight the highest level whose threshold
// its frequency delta exceeds. Thresholds are the scale constants multiplied
// by the average delta across all highlights, checked in ascending order so a
// later satisfied level overwrites an earlier one.
func ApplyIntensities(highlights []*domain.Highlight, scale []domain.Intensity) {
	if len(highlights) == 0 {
		return
	}

	total := 0.0
	for _, h := range highlights {
		total += h.Delta
	}

	avgDelta := total / float64(len(highlights))

	for _, h := range highlights {
		for i := range scale {
			if h.Delta > avgDelta*scale[i].Constant {
				h.Intensity = &scale[i]
			}
		}
	}
}
