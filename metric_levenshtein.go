//go:build !textsim_nolevenshtein

package textsim

func init() {
	RegisterMetric("levenshtein", DistanceMetric(Levenshtein))
	RegisterMetric("normalized_levenshtein", SimilarityMetric(NormalizedLevenshtein))
}
