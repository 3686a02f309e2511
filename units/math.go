package units

type Quantity interface {
	~float64
}

func Neg[Q Quantity](q Q) Q {
	return -q
}

func Add[Q Quantity](a, b Q) Q {
	return a + b
}

func Sub[Q Quantity](a, b Q) Q {
	return a - b
}

func Mul[Q Quantity](q Q, f float64) Q {
	return Q(float64(q) * f)
}

func Div[Q Quantity](q Q, f float64) Q {
	return Q(float64(q) / f)
}

// Ratio divides two quantities of the same kind into a dimensionless number.
func Ratio[Q Quantity](a, b Q) float64 {
	return float64(a) / float64(b)
}

// Lerp returns low + (high - low) * fraction.
func Lerp[Q Quantity](low, high Q, fraction float64) Q {
	return Add(low, Mul(Sub(high, low), fraction))
}

func SquaredRelativeError[Q Quantity](q, reference Q) float64 {
	r := Ratio(Sub(q, reference), reference)

	return r * r
}

func powi(f float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= f
	}

	return r
}
