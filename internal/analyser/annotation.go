package analyser

// Trend direction markers emitted by Annotate.
const (
	TrendUp   = 1
	TrendFlat = 0
	TrendDown = -1
)

// Annotate converts the smoothed series into per-second trend signs. The
// result has one entry per adjacent pair, so its length is len(smooth)-1.
func Annotate(smooth []float64) []int {
	if len(smooth) < 2 {
		return nil
	}

	annotation := make([]int, 0, len(smooth)-1)

	for i := 0; i < len(smooth)-1; i++ {
		switch {
		case smooth[i] < smooth[i+1]:
			annotation = append(annotation, TrendUp)
		case smooth[i] > smooth[i+1]:
			annotation = append(annotation, TrendDown)
		default:
			annotation = append(annotation, TrendFlat)
		}
	}

	return annotation
}
