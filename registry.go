package textsim

import (
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]Metric{}
)

// RegisterMetric makes m available under name via LookupMetric, replacing
// any previous registration. The built-in metric families register
// themselves at init time; each family can be excluded from a build with its
// negative build tag (textsim_nohamming, textsim_nolevenshtein,
// textsim_noosa, textsim_nodamerau, textsim_nojaro, textsim_nosorensendice,
// textsim_nogestalt).
func RegisterMetric(name string, m Metric) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = m
}

// LookupMetric returns the metric registered under name.
func LookupMetric(name string) (Metric, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	m, ok := registry[name]
	return m, ok
}

// MetricNames returns the names of all registered metrics in sorted order.
func MetricNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
