package textsim

// Metric scores a pair of strings. Similarity metrics return values in
// [0.0, 1.0] with 1.0 meaning identical; distance metrics return the
// non-negative distance with 0 meaning identical. Hamming is the only
// metric in this package whose Compare can fail.
//
// Implementations must be safe for concurrent use; every metric shipped
// here is a pure function over its inputs.
type Metric interface {
	Compare(a, b string) (float64, error)
}

// MetricFunc adapts an ordinary function to the Metric interface.
type MetricFunc func(a, b string) (float64, error)

// Compare calls f.
func (f MetricFunc) Compare(a, b string) (float64, error) { return f(a, b) }

// SimilarityMetric adapts a total similarity function to the Metric
// interface.
func SimilarityMetric(f func(a, b string) float64) Metric {
	return MetricFunc(func(a, b string) (float64, error) {
		return f(a, b), nil
	})
}

// DistanceMetric adapts a total distance function to the Metric interface.
func DistanceMetric(f func(a, b string) int) Metric {
	return MetricFunc(func(a, b string) (float64, error) {
		return float64(f(a, b)), nil
	})
}
