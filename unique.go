package fold

import (
	"iter"
	"slices"
)

// Unique returns the lines of seq, skipping every line that is
// [Line.Equivalent] to one it already returned. It is useful when collecting
// the folds of several constructions into one crease pattern.
func Unique(seq iter.Seq[Line]) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		var seen []Line
		for l := range seq {
			if slices.ContainsFunc(seen, l.Equivalent) {
				continue
			}
			seen = append(seen, l)
			if !yield(l) {
				return
			}
		}
	}
}
