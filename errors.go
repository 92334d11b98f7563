package fold

import "github.com/pkg/errors"

// Errors reported by the boundary constructors and by [Construction]. The
// axioms themselves never fail; they produce no lines instead.
//
// Returned errors may carry additional context. Use [errors.Cause] to
// compare them against these values.
var (
	ErrTooFewSides        = errors.New("fold: boundary needs at least three sides")
	ErrParallelSides      = errors.New("fold: adjacent boundary sides are parallel")
	ErrNotConvex          = errors.New("fold: boundary is not convex")
	ErrDegenerateBoundary = errors.New("fold: boundary has no interior")
	ErrNotUnit            = errors.New("fold: line normal is not a unit vector")
	ErrNonFinite          = errors.New("fold: coordinate is NaN or infinite")

	ErrUnknownAxiom         = errors.New("fold: unknown axiom")
	ErrArity                = errors.New("fold: wrong number of construction inputs")
	ErrInputOutsideBoundary = errors.New("fold: input line does not cross the paper")
)
