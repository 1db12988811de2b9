package analyser

// Smooth applies a centered uniform convolution of the given width and returns
// a series of the same length ("same" mode). Boundary values are computed
// against the samples that overlap the kernel, so the head and tail taper
// instead of being dropped. The centered slice of the full convolution starts
// at (width-1)/2, matching the boundary values the trend detector was tuned
// against.
func Smooth(series []float64, width int) []float64 {
	if width <= 1 || len(series) == 0 {
		out := make([]float64, len(series))
		copy(out, series)

		return out
	}

	n := len(series)
	weight := 1.0 / float64(width)
	offset := (width - 1) / 2

	out := make([]float64, n)

	for k := 0; k < n; k++ {
		full := k + offset

		lo := full - width + 1
		if lo < 0 {
			lo = 0
		}

		hi := full
		if hi > n-1 {
			hi = n - 1
		}

		sum := 0.0
		for i := lo; i <= hi; i++ {
			sum += series[i] * weight
		}

		out[k] = sum
	}

	return out
}
