//go:build !textsim_nodamerau

package textsim

func init() {
	RegisterMetric("damerau_levenshtein", DistanceMetric(DamerauLevenshtein))
	RegisterMetric("normalized_damerau_levenshtein", SimilarityMetric(NormalizedDamerauLevenshtein))
}
