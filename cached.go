package textsim

import (
	"errors"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedMetric wraps m with an LRU memo of up to size recent scores, keyed
// by the input pair. Useful when the same candidates are scored repeatedly,
// e.g. across successive autocomplete queries. The wrapped metric must be
// deterministic. Scores from failed comparisons are not cached.
func CachedMetric(m Metric, size int) (Metric, error) {
	if m == nil {
		return nil, errors.New("metric cannot be nil")
	}
	cache, err := lru.New[uint64, float64](size)
	if err != nil {
		return nil, err
	}
	return MetricFunc(func(a, b string) (float64, error) {
		key := pairKey(a, b)
		if score, ok := cache.Get(key); ok {
			return score, nil
		}
		score, err := m.Compare(a, b)
		if err != nil {
			return 0, err
		}
		cache.Add(key, score)
		return score, nil
	}), nil
}

// pairKey hashes an ordered string pair, separating the halves so that
// ("ab","c") and ("a","bc") map to different keys.
func pairKey(a, b string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(a)
	_, _ = d.Write([]byte{0xff})
	_, _ = d.WriteString(b)
	return d.Sum64()
}
