// Package fold computes the candidate fold lines of the Huzita–Justin
// origami axioms on a sheet of paper bounded by a convex region.
//
// # Axioms
//
// Each axiom describes one way of making a single crease by bringing points
// and lines of the paper into alignment:
//
//  1. [Axiom1]: fold through two points.
//  2. [Axiom2]: fold one point onto another.
//  3. [Axiom3]: fold one line onto another.
//  4. [Axiom4]: fold through a point, perpendicular to a line.
//  5. [Axiom5]: fold through one point, placing another onto a line.
//  6. [Axiom6]: place two points onto two lines simultaneously.
//  7. [Axiom7]: fold perpendicular to one line, placing a point onto another.
//
// Every axiom returns an [iter.Seq] of at most two lines, in the order they
// were derived. The sequence should be treated as a set. Candidates that would
// crease outside the paper, or that would move a point off of it, are
// filtered out, so the sequence may be empty. Geometric degeneracies such as
// parallel input lines or unreachable points also produce empty sequences
// rather than errors.
//
// The axioms are pure functions of their inputs and safe for concurrent use.
//
// # Lines and boundaries
//
// A [Line] is stored in normal form, U·p = D with |U| = 1. (U, D) and
// (−U, −D) describe the same line; use [Line.Equivalent] to compare lines,
// [Line.Canonical] to pick one representative, and [Unique] to drop
// duplicates from the folds of several constructions.
//
// A [Boundary] is the outline of the paper. [UnitSquare] returns the usual
// square sheet; [NewPolygonBoundary] and [NewRectBoundary] construct other
// convex shapes.
//
// # Tolerances
//
// Geometric tests use the absolute tolerances in tolerance.go, chiefly
// [Epsilon]. Containment in a boundary is exact.
//
// # Constructions
//
// [Construction] bundles an axiom number with its inputs. It validates them
// and reports problems as errors, which makes it suitable for inputs read
// from files or the command line.
package fold
