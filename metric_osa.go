//go:build !textsim_noosa

package textsim

func init() {
	RegisterMetric("osa", DistanceMetric(OSADistance))
}
