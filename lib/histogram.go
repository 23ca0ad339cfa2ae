package lib

import "fmt"
import "math"
import "sort"
import "strconv"
import "strings"

// HistogramInt64 statistical histogram of int64 samples, with
// pre-configured bucket range and width. Samples outside the range
// accumulate into an underflow and an overflow bucket.
type HistogramInt64 struct {
	// stats
	n      int64
	minval int64
	maxval int64
	sum    int64
	sumsq  float64
	// buckets
	under   int64
	over    int64
	buckets []int64
	// setup
	init  bool
	from  int64
	till  int64
	width int64
}

// NewhistogramInt64 return a new histogram object, with buckets of
// `width` between `from` and `till`, both aligned down to width.
func NewhistogramInt64(from, till, width int64) *HistogramInt64 {
	from = (from / width) * width
	till = (till / width) * width
	h := &HistogramInt64{from: from, till: till, width: width}
	h.buckets = make([]int64, (till-from)/width)
	return h
}

// Add a sample to this histogram.
func (h *HistogramInt64) Add(sample int64) {
	h.n++
	h.sum += sample
	f := float64(sample)
	h.sumsq += f * f
	if h.init == false || sample < h.minval {
		h.minval = sample
		h.init = true
	}
	if h.maxval < sample {
		h.maxval = sample
	}

	switch {
	case sample < h.from:
		h.under++
	case sample >= h.till:
		h.over++
	default:
		h.buckets[(sample-h.from)/h.width]++
	}
}

// Min return minimum value from sample.
func (h *HistogramInt64) Min() int64 {
	return h.minval
}

// Max return maximum value from sample.
func (h *HistogramInt64) Max() int64 {
	return h.maxval
}

// Samples return total number of samples in the set.
func (h *HistogramInt64) Samples() int64 {
	return h.n
}

// Sum return the sum of all sample values.
func (h *HistogramInt64) Sum() int64 {
	return h.sum
}

// Mean return the average value of all samples.
func (h *HistogramInt64) Mean() int64 {
	if h.n == 0 {
		return 0
	}
	return int64(float64(h.sum) / float64(h.n))
}

// Variance return the squared deviation of a random sample from
// its mean.
func (h *HistogramInt64) Variance() float64 {
	if h.n == 0 {
		return 0
	}
	nF, meanF := float64(h.n), float64(h.Mean())
	return (h.sumsq / nF) - (meanF * meanF)
}

// SD return by how much the samples differ from the mean value of
// sample set.
func (h *HistogramInt64) SD() float64 {
	if h.n == 0 {
		return 0
	}
	return math.Sqrt(h.Variance())
}

// Stats return a map of non-empty buckets, keyed by the bucket's
// lowest sample value. Underflows key as "-", overflows as "+".
func (h *HistogramInt64) Stats() map[string]int64 {
	m := make(map[string]int64)
	if h.under > 0 {
		m["-"] = h.under
	}
	for i, count := range h.buckets {
		if count == 0 {
			continue
		}
		key := strconv.Itoa(int(h.from + (int64(i) * h.width)))
		m[key] = count
	}
	if h.over > 0 {
		m["+"] = h.over
	}
	return m
}

// Fullstats includes min,max,mean,variance,stddeviance along with
// the Stats() buckets.
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	buckets := make(map[string]interface{})
	for k, v := range h.Stats() {
		buckets[k] = v
	}
	return map[string]interface{}{
		"samples":     h.Samples(),
		"min":         h.Min(),
		"max":         h.Max(),
		"mean":        h.Mean(),
		"variance":    h.Variance(),
		"stddeviance": h.SD(),
		"histogram":   buckets,
	}
}

// Logstring return Fullstats as loggable string.
func (h *HistogramInt64) Logstring() string {
	stats := h.Fullstats()
	ss := []string{}
	for _, key := range []string{"samples", "min", "max", "mean"} {
		ss = append(ss, fmt.Sprintf(`"%v": %v`, key, stats[key]))
	}
	buckets := stats["histogram"].(map[string]interface{})
	nums := []int{}
	for k := range buckets {
		if k == "+" || k == "-" {
			continue
		}
		n, _ := strconv.Atoi(k)
		nums = append(nums, n)
	}
	sort.Ints(nums)
	hs := []string{}
	if v, ok := buckets["-"]; ok {
		hs = append(hs, fmt.Sprintf(`"-": %v`, v))
	}
	for _, n := range nums {
		k := strconv.Itoa(n)
		hs = append(hs, fmt.Sprintf(`"%v": %v`, k, buckets[k]))
	}
	if v, ok := buckets["+"]; ok {
		hs = append(hs, fmt.Sprintf(`"+": %v`, v))
	}
	ss = append(ss, `"histogram": {`+strings.Join(hs, ",")+`}`)
	return "{" + strings.Join(ss, ",") + "}"
}
