// Package textsim implements string similarity and distance metrics:
// Levenshtein, Optimal String Alignment, Damerau-Levenshtein, Hamming,
// Jaro and Jaro-Winkler, Sørensen-Dice and the Ratcliff/Obershelp
// sequence matcher.
//
// String entry points treat their inputs as sequences of Unicode code
// points. The edit-distance and Jaro families also have Generic*
// counterparts that work on slices of any comparable element type.
//
// All metrics are pure functions with no shared state and are safe for
// concurrent use. Each metric family is registered under a well-known name
// (see LookupMetric); a family can be excluded from a build with the
// matching negative build tag, e.g. "textsim_nojaro".
//
// The matcher subpackage ranks a collection of candidate strings against a
// query using any Metric.
package textsim
