//go:build !textsim_nogestalt

package textsim

func init() {
	RegisterMetric("sequence_matcher", SimilarityMetric(SequenceMatcher))
}
