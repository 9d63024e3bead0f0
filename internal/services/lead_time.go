package services

// One-sided z-score for a 95% upper confidence bound.
const zUpper95 = 1.645

// Assumed standard deviation of the duration model's error, expressed as a
// fraction of the point estimate.
const relativeStdDev = 0.20

// ExpectedLeadTimeDays expands a point estimate of transit duration into a
// one-sided 95% upper bound suitable for booking guidance:
//
//	p + 1.645 * (0.20 * p)
//
// The model exposes no per-row predictive variance, so a standard deviation
// of 20% of the point estimate is assumed. This is a heuristic
// approximation, not a statistically calibrated interval. Negative point
// estimates are non-physical and are clamped to zero before expansion, so
// the result is never negative.
func ExpectedLeadTimeDays(pointEstimateDays float64) float64 {
	if pointEstimateDays < 0 {
		pointEstimateDays = 0
	}
	return pointEstimateDays + zUpper95*(relativeStdDev*pointEstimateDays)
}
