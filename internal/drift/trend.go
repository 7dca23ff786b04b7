package drift

// computeTrend fits an ordinary least-squares line to values against their
// indices 0..len-1 and returns the slope and R². Fewer than two values give
// (0, 0). A perfectly flat series has slope 0 and R² 1: the flat line is an
// exact fit.
func computeTrend(values []float64) (slope, rSquared float64) {
	m := len(values)
	if m < 2 {
		return 0, 0
	}

	n := float64(m)
	var sumX, sumY float64
	for i, y := range values {
		sumX += float64(i)
		sumY += y
	}
	meanX := sumX / n
	meanY := sumY / n

	var ssXY, ssXX, ssYY float64
	for i, y := range values {
		dx := float64(i) - meanX
		dy := y - meanY
		ssXY += dx * dy
		ssXX += dx * dx
		ssYY += dy * dy
	}

	slope = ssXY / ssXX

	if ssYY == 0 {
		// zero variance in y: slope is 0 and the fit is exact
		return 0, 1
	}

	rSquared = (ssXY * ssXY) / (ssXX * ssYY)
	if rSquared > 1 {
		rSquared = 1 // guard float round-off
	}
	return slope, rSquared
}
