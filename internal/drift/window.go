package drift

// window is a read-only view into the analyzed token sequence. Windows share
// the caller's backing array; nothing here copies token data.
type window struct {
	start  int
	tokens []string
}

// windowCount returns the number of full windows a sequence of n tokens
// yields: floor((n-size)/stride)+1 when n >= size, else 0. A trailing
// partial window is dropped, never zero-padded.
func windowCount(n, size, stride int) int {
	if n < size {
		return 0
	}
	return (n-size)/stride + 1
}

// overlapRatio reports the fraction of each window shared with its
// successor: (size-stride)/size. A negative ratio means stride exceeds the
// window size, leaving gaps between windows; that is a valid configuration.
func overlapRatio(size, stride int) float64 {
	return float64(size-stride) / float64(size)
}

// makeWindows slices tokens into windows starting at offsets 0, stride,
// 2*stride, and so on, each spanning size tokens. Calling it twice with the
// same inputs yields identical windows; the token slice is never mutated.
func makeWindows(tokens []string, size, stride int) []window {
	count := windowCount(len(tokens), size, stride)
	if count == 0 {
		return nil
	}

	windows := make([]window, 0, count)
	for i := 0; i < count; i++ {
		start := i * stride
		windows = append(windows, window{start: start, tokens: tokens[start : start+size]})
	}
	return windows
}
