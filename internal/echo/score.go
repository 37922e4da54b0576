package echo

// Polynomial evaluates a + b·x + c·x² over at most three coefficients;
// missing coefficients are zero. The raw value is returned unclamped and
// unnormalized so thresholds absorb any radius/coefficient combination.
func Polynomial(coeffs []float64, x float64) float64 {
	var a, b, c float64
	if len(coeffs) > 0 {
		a = coeffs[0]
	}
	if len(coeffs) > 1 {
		b = coeffs[1]
	}
	if len(coeffs) > 2 {
		c = coeffs[2]
	}
	return a + b*x + c*x*x
}
