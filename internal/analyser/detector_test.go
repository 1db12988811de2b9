package analyser

import (
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name        string
		annotation  []int
		smooth      []float64
		minDuration int
		wantStarts  []int
		wantDurs    []int
	}{
		{
			name:        "run closes on flat",
			annotation:  []int{TrendUp, TrendUp, TrendUp, TrendFlat},
			smooth:      []float64{1, 2, 3, 4, 4},
			minDuration: 2,
			wantStarts:  []int{0},
			wantDurs:    []int{3},
		},
		{
			name:        "short run discarded",
			annotation:  []int{TrendUp, TrendDown, TrendUp, TrendUp, TrendUp, TrendDown},
			smooth:      []float64{1, 2, 1, 2, 3, 4, 3},
			minDuration: 3,
			wantStarts:  []int{2},
			wantDurs:    []int{3},
		},
		{
			name:        "open run at end is dropped",
			annotation:  []int{TrendFlat, TrendUp, TrendUp, TrendUp},
			smooth:      []float64{1, 1, 2, 3, 4},
			minDuration: 2,
			wantStarts:  nil,
			wantDurs:    nil,
		},
		{
			name:        "negative delta discarded",
			annotation:  []int{TrendUp, TrendUp, TrendFlat},
			smooth:      []float64{5, 6, 1, 1},
			minDuration: 2,
			wantStarts:  nil,
			wantDurs:    nil,
		},
		{
			name:        "two separate runs",
			annotation:  []int{TrendUp, TrendUp, TrendDown, TrendUp, TrendUp, TrendFlat},
			smooth:      []float64{0, 1, 2, 1, 2, 3, 3},
			minDuration: 2,
			wantStarts:  []int{0, 3},
			wantDurs:    []int{2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect("stream", tt.annotation, tt.smooth, tt.minDuration)

			if len(got) != len(tt.wantStarts) {
				t.Fatalf("Detect() returned %d highlights, want %d", len(got), len(tt.wantStarts))
			}

			for i, h := range got {
				if h.Start != tt.wantStarts[i] || h.Duration != tt.wantDurs[i] {
					t.Errorf("Detect()[%d] = (%d, %d), want (%d, %d)", i, h.Start, h.Duration, tt.wantStarts[i], tt.wantDurs[i])
				}

				if h.StreamID != "stream" {
					t.Errorf("Detect()[%d].StreamID = %q, want %q", i, h.StreamID, "stream")
				}
			}
		})
	}
}

func TestDetectDelta(t *testing.T) {
	annotation := []int{TrendUp, TrendUp, TrendDown}
	smooth := []float64{1, 2, 3.5, 3}

	got := Detect("s", annotation, smooth, 2)
	if len(got) != 1 {
		t.Fatalf("Detect() returned %d highlights, want 1", len(got))
	}

	if got[0].Delta != 2.5 {
		t.Errorf("Delta = %v, want 2.5", got[0].Delta)
	}
}
