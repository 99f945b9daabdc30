// Package matcher ranks a collection of candidate strings against a query
// using a pluggable processor and similarity metric.
package matcher

import (
	"sort"
	"sync"
)

// Match is one ranked candidate: the original choice value, its position in
// the input collection and its score.
type Match struct {
	Choice string
	Index  int
	Score  float64
}

// GetTopN returns the choices best matching query in descending score
// order, scored with normalized Levenshtein similarity unless WithMetric or
// WithMetricName overrides it. Choices scoring below the cutoff are
// dropped; choices with equal scores keep their original relative order.
func GetTopN(query string, choices []string, opts ...Option) ([]string, error) {
	matches, err := GetTopNMatches(query, choices, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Choice
	}
	return out, nil
}

// GetTopNMatches is GetTopN with scores and original positions attached to
// the returned candidates.
func GetTopNMatches(query string, choices []string, opts ...Option) ([]Match, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}

	processedQuery := cfg.processor.Process(query)
	processed := make([]string, len(choices))
	for i, choice := range choices {
		processed[i] = cfg.processor.Process(choice)
	}

	scores, err := scoreAll(&cfg, processedQuery, processed)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(choices))
	for i, score := range scores {
		if score < cfg.cutoff {
			continue
		}
		matches = append(matches, Match{Choice: choices[i], Index: i, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if cfg.limit > 0 && len(matches) > cfg.limit {
		matches = matches[:cfg.limit]
	}
	return matches, nil
}

func scoreAll(cfg *config, query string, candidates []string) ([]float64, error) {
	scores := make([]float64, len(candidates))
	errs := make([]error, len(candidates))

	if workers := min(cfg.concurrency, len(candidates)); workers > 1 {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					scores[i], errs[i] = cfg.metric.Compare(query, candidates[i])
				}
			}()
		}
		for i := range candidates {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	} else {
		for i, candidate := range candidates {
			scores[i], errs[i] = cfg.metric.Compare(query, candidate)
		}
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return scores, nil
}
