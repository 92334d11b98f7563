package fold

// Epsilon is the general tolerance of the package's geometric tests.
const Epsilon = 1e-8

const (
	// ParallelEpsilon bounds the determinant (or cross product) of two unit
	// normals below which lines are treated as parallel.
	ParallelEpsilon = Epsilon

	// DegenerateEpsilon bounds magnitudes, spans and polynomial coefficients
	// below which they are treated as zero.
	DegenerateEpsilon = Epsilon

	// BoundaryEpsilon is the slack allowed when deciding whether an
	// intersection with one side of a boundary lies on the others. It only
	// applies to clipping; [Boundary.Contains] is exact.
	BoundaryEpsilon = Epsilon

	// PointOnLineTolerance is the minimum distance between the moving point
	// and its target line in [Axiom6]. Closer inputs produce no folds.
	//
	// It is much coarser than [Epsilon] because the cubic's coefficients
	// degrade quickly as the point approaches the line.
	PointOnLineTolerance = 0.02
)
