package pomdp

// Accuracy brackets a reported value with a sound interval: every bound
// this module reports (the outer value-iteration bound, the inner
// chain-solver bound, and the engine's combined result) carries one, per
// SPEC_FULL's requirement that accuracy is always reported, never assumed.
type Accuracy struct {
	Lower float64
	Upper float64
}

// HalfWidth returns half the interval width, the conventional "± x" figure
// quoted alongside a point value.
func (a Accuracy) HalfWidth() float64 {
	return (a.Upper - a.Lower) / 2
}

// FromResidual builds a symmetric Accuracy around value from a sup-norm
// residual: absolute mode uses the residual directly, relative mode scales
// it by |value|.
func FromResidual(value, residual float64, relative bool) Accuracy {
	halfWidth := residual
	if relative {
		v := value
		if v < 0 {
			v = -v
		}
		halfWidth = residual * v
	}
	return Accuracy{Lower: value - halfWidth, Upper: value + halfWidth}
}

// Union returns the smallest Accuracy containing both a and b, used when
// combining an outer and inner bound into one reported interval.
func Union(a, b Accuracy) Accuracy {
	lo, hi := a.Lower, a.Upper
	if b.Lower < lo {
		lo = b.Lower
	}
	if b.Upper > hi {
		hi = b.Upper
	}
	return Accuracy{Lower: lo, Upper: hi}
}
