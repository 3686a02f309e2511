package curve

import (
	"fmt"
	"math"
	"sort"

	"github.com/sgostarter/libfanperf/units"
)

// FanCurve is the ordered set of operating points of one test. A curve is never changed after it is built,
// every transformation returns a new curve.
type FanCurve[P OperatingPoint[P]] struct {
	points []P
}

func NewFanCurve[P OperatingPoint[P]](points ...P) *FanCurve[P] {
	return &FanCurve[P]{
		points: append([]P{}, points...),
	}
}

func (c *FanCurve[P]) Points() []P {
	return append([]P{}, c.points...)
}

func (c *FanCurve[P]) Len() int {
	return len(c.points)
}

// Bounds returns the lowest and highest sampled static pressure.
func (c *FanCurve[P]) Bounds() (low, high units.StaticPressure, err error) {
	pairs, err := c.InterpolationPairs()
	if err != nil {
		return
	}

	low = pairs[0].X
	high = pairs[len(pairs)-1].X

	return
}

func (c *FanCurve[P]) ScaleDiameter(from, to units.FanDiameter) (*FanCurve[P], error) {
	points := make([]P, 0, len(c.points))

	for idx, point := range c.points {
		scaled, err := point.ScaleDiameter(from, to)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", idx, err)
		}

		points = append(points, scaled)
	}

	return &FanCurve[P]{points: points}, nil
}

// InterpolationPairs returns the points keyed by static pressure, ascending. Points whose pressure became
// infinite, a shutoff sample scaled to a nonzero airflow, are outside the sampled envelope and left out.
func (c *FanCurve[P]) InterpolationPairs() ([]InterpolationPair[P], error) {
	if len(c.points) == 0 {
		return nil, ErrEmptyCurve
	}

	pairs := make([]InterpolationPair[P], 0, len(c.points))

	for idx, point := range c.points {
		x := point.StaticPressure()
		if math.IsNaN(x.Inches()) {
			return nil, fmt.Errorf("%w: point %d has no comparable static pressure", ErrInconsistentCurve, idx)
		}

		if math.IsInf(x.Inches(), 0) {
			continue
		}

		pairs = append(pairs, InterpolationPair[P]{X: x, Point: point})
	}

	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: no sample at a finite static pressure", ErrOutOfBounds)
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].X < pairs[j].X
	})

	return pairs, nil
}

// Interpolate looks up the operating point at the target static pressure. The first adjacent pair of samples
// bracketing the target is used; a target equal to a sample returns that sample.
func (c *FanCurve[P]) Interpolate(target units.StaticPressure) (p P, err error) {
	pairs, err := c.InterpolationPairs()
	if err != nil {
		return
	}

	if len(pairs) == 1 && pairs[0].X == target {
		p = pairs[0].Point

		return
	}

	for idx := 0; idx+1 < len(pairs); idx++ {
		low, high := pairs[idx], pairs[idx+1]

		if !(low.X <= target && target <= high.X) {
			continue
		}

		if target == low.X {
			p = low.Point

			return
		}

		if target == high.X {
			p = high.Point

			return
		}

		p, err = low.Point.InterpolateBetween(high.Point, target)

		return
	}

	err = fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfBounds, target.Inches(),
		pairs[0].X.Inches(), pairs[len(pairs)-1].X.Inches())

	return
}

func ScaleAirflow[P AirflowScalable[P]](c *FanCurve[P], from, to units.InletAirflow) (*FanCurve[P], error) {
	points := make([]P, 0, len(c.points))

	for idx, point := range c.points {
		scaled, err := point.ScaleAirflow(from, to)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", idx, err)
		}

		points = append(points, scaled)
	}

	return &FanCurve[P]{points: points}, nil
}

// ScaleToAirflow scales every point from its own inlet airflow to the given one, so the result holds
// the fan's states at a constant airflow and varying speed.
func ScaleToAirflow[P AirflowScalable[P]](c *FanCurve[P], to units.InletAirflow) (*FanCurve[P], error) {
	points := make([]P, 0, len(c.points))

	for idx, point := range c.points {
		scaled, err := point.ScaleAirflow(point.InletAirflow(), to)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", idx, err)
		}

		points = append(points, scaled)
	}

	return &FanCurve[P]{points: points}, nil
}

// MeanErrorFrom compares two curves point by point, in order.
func MeanErrorFrom[P OperatingPoint[P]](c, reference *FanCurve[P]) (float64, error) {
	if c.Len() == 0 || reference.Len() == 0 {
		return 0, ErrEmptyCurve
	}

	if c.Len() != reference.Len() {
		return 0, fmt.Errorf("%w: %d points against %d", ErrInconsistentCurve, c.Len(), reference.Len())
	}

	var sum float64

	for idx, point := range c.points {
		sum += point.ErrorFrom(reference.points[idx])
	}

	return sum / float64(c.Len()), nil
}
