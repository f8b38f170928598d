package simplex

import "errors"

// ErrBadResolution indicates a resolution M < 1 was requested.
var ErrBadResolution = errors.New("simplex: resolution must be >= 1")

// ErrBadDimension indicates a simplex dimension n < 1 or n exceeding
// belief.MaxRefinements was requested.
var ErrBadDimension = errors.New("simplex: dimension out of range")

// ErrReconstruction indicates that the barycentric weights produced by
// Decompose failed to reconstruct the input point within tolerance — an
// internal bug, never a property of valid input.
var ErrReconstruction = errors.New("simplex: decomposition failed self-check")
