package curve

import "github.com/sgostarter/libfanperf/units"

// OperatingPoint is one sampled state of a fan. Static pressure is the independent variable of every curve.
type OperatingPoint[P any] interface {
	StaticPressure() units.StaticPressure

	ScaleDiameter(from, to units.FanDiameter) (P, error)

	// InterpolateBetween is called on the low bracket point.
	InterpolateBetween(high P, target units.StaticPressure) (P, error)

	// ErrorFrom is the mean of the squared relative errors of every quantity of the point.
	ErrorFrom(other P) float64
}

type AirflowScalable[P any] interface {
	OperatingPoint[P]

	InletAirflow() units.InletAirflow
	ScaleAirflow(from, to units.InletAirflow) (P, error)
}

type InterpolationPair[P any] struct {
	X     units.StaticPressure
	Point P
}
