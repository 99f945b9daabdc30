//go:build !textsim_nohamming

package textsim

func init() {
	RegisterMetric("hamming", MetricFunc(func(a, b string) (float64, error) {
		d, err := Hamming(a, b)
		return float64(d), err
	}))
}
