package matcher

import (
	"fmt"

	"github.com/textsim/textsim"
	"github.com/textsim/textsim/processors"
)

type config struct {
	cutoff      float64
	limit       int
	processor   processors.StringProcessor
	metric      textsim.Metric
	metricName  string
	concurrency int
}

// Option configures a single GetTopN call.
type Option func(*config)

func defaultConfig() config {
	return config{
		cutoff:    0.0,
		limit:     0,
		processor: processors.Null,
		// The default metric is referenced directly rather than looked up in
		// the registry, so it stays valid no matter which metric families a
		// build excludes.
		metric: textsim.SimilarityMetric(textsim.NormalizedLevenshtein),
	}
}

// WithCutoff drops candidates scoring below c. The default of 0.0 keeps
// every candidate.
func WithCutoff(c float64) Option {
	return func(cfg *config) { cfg.cutoff = c }
}

// WithLimit caps the number of returned matches at n. A non-positive n
// means no limit, which is the default.
func WithLimit(n int) Option {
	return func(cfg *config) { cfg.limit = n }
}

// WithProcessor transforms the query and every candidate before scoring.
// Returned matches always carry the original, unprocessed candidate values.
func WithProcessor(p processors.StringProcessor) Option {
	return func(cfg *config) {
		if p != nil {
			cfg.processor = p
		}
	}
}

// WithMetric scores candidates with m instead of normalized Levenshtein
// similarity.
func WithMetric(m textsim.Metric) Option {
	return func(cfg *config) {
		if m != nil {
			cfg.metric = m
		}
	}
}

// WithMetricName scores candidates with the registered metric of that name.
// GetTopN fails if no such metric is registered in this build.
func WithMetricName(name string) Option {
	return func(cfg *config) { cfg.metricName = name }
}

// WithConcurrency fans candidate scoring out over n goroutines. Results are
// merged back in candidate order, so ranking is identical to a sequential
// run. Values below 2 keep scoring sequential.
func WithConcurrency(n int) Option {
	return func(cfg *config) { cfg.concurrency = n }
}

func (cfg *config) resolve() error {
	if cfg.metricName == "" {
		return nil
	}
	m, ok := textsim.LookupMetric(cfg.metricName)
	if !ok {
		return fmt.Errorf("matcher: no metric registered under %q", cfg.metricName)
	}
	cfg.metric = m
	return nil
}
