package noise

// Field is a scalar noise field over 3D space. Fields are pure: the same
// coordinates always produce the same value, which is what lets chunks be
// paged out and regenerated byte-for-byte identical later.
type Field func(x, y, z float64) float64

// Constant returns a field with the same value everywhere.
func Constant(v float64) Field {
	return func(x, y, z float64) float64 { return v }
}

// Clamp limits f to the range [lo, hi].
func Clamp(f Field, lo, hi float64) Field {
	return func(x, y, z float64) float64 {
		v := f(x, y, z)
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
}

// Subtract returns a − b.
func Subtract(a, b Field) Field {
	return func(x, y, z float64) float64 {
		return a(x, y, z) - b(x, y, z)
	}
}

// Divide returns a / b. The caller must keep b away from zero.
func Divide(a, b Field) Field {
	return func(x, y, z float64) float64 {
		return a(x, y, z) / b(x, y, z)
	}
}

// Select switches between two fields on a control value: low where
// control < threshold, high where control >= threshold.
func Select(low, high, control Field, threshold float64) Field {
	return func(x, y, z float64) float64 {
		if control(x, y, z) >= threshold {
			return high(x, y, z)
		}
		return low(x, y, z)
	}
}

// ScaleOffset returns f*scale + offset.
func ScaleOffset(f Field, scale, offset float64) Field {
	return func(x, y, z float64) float64 {
		return f(x, y, z)*scale + offset
	}
}

// ZeroZ evaluates f with the z coordinate pinned to zero, turning a 3D
// field into a heightmap over (x, y).
func ZeroZ(f Field) Field {
	return func(x, y, z float64) float64 {
		return f(x, y, 0)
	}
}

// TranslateZ shifts the domain of f along z by the value of dz, so f is
// sampled at (x, y, z + dz(x,y,z)).
func TranslateZ(f Field, dz Field) Field {
	return func(x, y, z float64) float64 {
		return f(x, y, z+dz(x, y, z))
	}
}

// CoordZ is the z coordinate itself, the building block for vertical
// gradients.
func CoordZ() Field {
	return func(x, y, z float64) float64 { return z }
}
