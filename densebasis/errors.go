package densebasis

import "errors"

var (
	// ErrSingular is not returned by this package: ComputeFactor reports
	// a zero pivot during Gauss-Jordan inversion as a nonzero rank
	// deficiency instead. It is kept as a sentinel so callers assembling
	// their own diagnostics can match on it.
	ErrSingular = errors.New("densebasis: singular basis matrix")
	// ErrDimensionMismatch is returned by NewBasis when the supplied
	// matrix, bounds, or cost slices disagree in length.
	ErrDimensionMismatch = errors.New("densebasis: dimension mismatch")
)
