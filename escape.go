// Package mandelbrot computes escape times under z = z^2 + c and parses
// the "x,y" style number pairs used to pick points on the complex plane.
package mandelbrot

// EscapeRadiusSqr is the squared escape radius. Once |z| > 2, z is sure to
// fly off to infinity.
const EscapeRadiusSqr = 4.0

// EscapeTime tries to prove that c is outside the Mandelbrot set using at
// most limit iterations of z = z^2 + c, starting from z = 0.
//
// If c escapes, it returns the index of the first iteration at which |z|
// exceeded 2, and true. If the limit is reached first, c is probably a
// member and EscapeTime returns 0, false.
func EscapeTime(c complex128, limit uint) (uint, bool) {
	var z complex128
	for it := uint(0); it < limit; it += 1 {
		// squared magnitude, no sqrt needed
		if real(z)*real(z)+imag(z)*imag(z) > EscapeRadiusSqr {
			return it, true
		}
		// z = z ^ 2 + c
		z = z*z + c
	}
	return 0, false
}

// InSet reports whether c could not be shown to escape within limit.
func InSet(c complex128, limit uint) bool {
	_, escaped := EscapeTime(c, limit)
	return !escaped
}
