//go:build !textsim_nojaro

package textsim

func init() {
	RegisterMetric("jaro", SimilarityMetric(Jaro))
	RegisterMetric("jaro_winkler", SimilarityMetric(JaroWinkler))
}
