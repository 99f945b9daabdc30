//go:build !textsim_nosorensendice

package textsim

func init() {
	RegisterMetric("sorensen_dice", SimilarityMetric(SorensenDice))
}
