package bench

import (
	"math"
	"slices"
)

// Well-known percentile thresholds.
const (
	percentileMedian = 0.5
	percentileP95    = 0.95
)

// Summary describes a sample of per-run counts.
type Summary struct {
	Mean   float64 `json:"mean"   yaml:"mean"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
	Median float64 `json:"median" yaml:"median"`
	P95    float64 `json:"p95"    yaml:"p95"`
	Min    int     `json:"min"    yaml:"min"`
	Max    int     `json:"max"    yaml:"max"`
}

// Summarize computes the summary of samples; an empty sample is all zeros.
func Summarize(samples []int) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = float64(s)
	}

	slices.Sort(values)

	mean, stddev := meanStdDev(values)

	return Summary{
		Mean:   mean,
		StdDev: stddev,
		Median: percentile(values, percentileMedian),
		P95:    percentile(values, percentileP95),
		Min:    slices.Min(samples),
		Max:    slices.Max(samples),
	}
}

// meanStdDev returns the mean and population standard deviation.
func meanStdDev(values []float64) (mean, stddev float64) {
	var sum float64

	for _, v := range values {
		sum += v
	}

	mean = sum / float64(len(values))

	var sumSq float64

	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}

	return mean, math.Sqrt(sumSq / float64(len(values)))
}

// percentile interpolates linearly over already sorted values.
func percentile(sorted []float64, p float64) float64 {
	idx := p * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))

	if lower == upper {
		return sorted[lower]
	}

	frac := idx - float64(lower)

	return sorted[lower]*(1-frac) + sorted[upper]*frac
}
