package standards

import (
	"errors"
	"fmt"

	"github.com/sgostarter/libfanperf/curve"
	"github.com/sgostarter/libfanperf/units"
)

// A1A2OperatingPoint is an A1 point augmented with the outlet airflow the A2 test shows at the same
// static pressure.
type A1A2OperatingPoint struct {
	speed           units.FanSpeed
	inletAirflow    units.InletAirflow
	outletAirflow   units.OutletAirflow
	staticPressure  units.StaticPressure
	brakeHorsepower units.BrakeHorsepower
}

func NewA1A2OperatingPoint(speed units.FanSpeed, inletAirflow units.InletAirflow, outletAirflow units.OutletAirflow,
	staticPressure units.StaticPressure, brakeHorsepower units.BrakeHorsepower) A1A2OperatingPoint {
	return A1A2OperatingPoint{
		speed:           speed,
		inletAirflow:    inletAirflow,
		outletAirflow:   outletAirflow,
		staticPressure:  staticPressure,
		brakeHorsepower: brakeHorsepower,
	}
}

func (p A1A2OperatingPoint) Speed() units.FanSpeed {
	return p.speed
}

func (p A1A2OperatingPoint) InletAirflow() units.InletAirflow {
	return p.inletAirflow
}

func (p A1A2OperatingPoint) OutletAirflow() units.OutletAirflow {
	return p.outletAirflow
}

func (p A1A2OperatingPoint) StaticPressure() units.StaticPressure {
	return p.staticPressure
}

func (p A1A2OperatingPoint) BrakeHorsepower() units.BrakeHorsepower {
	return p.brakeHorsepower
}

// InducedRatio is outlet over inlet airflow.
func (p A1A2OperatingPoint) InducedRatio() float64 {
	return p.outletAirflow.CFM() / p.inletAirflow.CFM()
}

func (p A1A2OperatingPoint) ScaleDiameter(from, to units.FanDiameter) (A1A2OperatingPoint, error) {
	return NewA1A2OperatingPoint(
		p.speed.ScaleDiameter(from, to),
		p.inletAirflow.ScaleDiameter(from, to),
		p.outletAirflow.ScaleDiameter(from, to),
		p.staticPressure.ScaleDiameter(from, to),
		p.brakeHorsepower.ScaleDiameter(from, to),
	), nil
}

func (p A1A2OperatingPoint) ScaleAirflow(from, to units.InletAirflow) (A1A2OperatingPoint, error) {
	inletAirflow, err := p.inletAirflow.ScaleAirflow(from, to)
	if err != nil {
		return p, err
	}

	return NewA1A2OperatingPoint(
		p.speed.ScaleAirflow(from, to),
		inletAirflow,
		p.outletAirflow.ScaleAirflow(from, to),
		p.staticPressure.ScaleAirflow(from, to),
		p.brakeHorsepower.ScaleAirflow(from, to),
	), nil
}

// InterpolateBetween works along the tested constant speed curve: both airflows and the horsepower are linear.
func (p A1A2OperatingPoint) InterpolateBetween(high A1A2OperatingPoint, target units.StaticPressure) (
	A1A2OperatingPoint, error) {
	if !sameQuantity(p.speed, high.speed) {
		return p, fmt.Errorf("%w: speed %v and %v", curve.ErrInconsistentCurve, p.speed.RPM(), high.speed.RPM())
	}

	inletAirflow, err := curve.InterpolateLinear(p.staticPressure, p.inletAirflow, high.staticPressure,
		high.inletAirflow, target)
	if err != nil {
		return p, err
	}

	outletAirflow, err := curve.InterpolateLinear(p.staticPressure, p.outletAirflow, high.staticPressure,
		high.outletAirflow, target)
	if err != nil {
		return p, err
	}

	bhp, err := curve.InterpolateLinear(p.staticPressure, p.brakeHorsepower, high.staticPressure,
		high.brakeHorsepower, target)
	if err != nil {
		return p, err
	}

	return NewA1A2OperatingPoint(p.speed, inletAirflow, outletAirflow, target, bhp), nil
}

func (p A1A2OperatingPoint) ErrorFrom(other A1A2OperatingPoint) float64 {
	return (units.SquaredRelativeError(p.speed, other.speed) +
		units.SquaredRelativeError(p.inletAirflow, other.inletAirflow) +
		units.SquaredRelativeError(p.outletAirflow, other.outletAirflow) +
		units.SquaredRelativeError(p.staticPressure, other.staticPressure) +
		units.SquaredRelativeError(p.brakeHorsepower, other.brakeHorsepower)) / 5
}

func augmentWithOutletAirflow(a1 A1OperatingPoint, a2 *curve.FanCurve[A2OperatingPoint]) (A1A2OperatingPoint, error) {
	corresponding, err := a2.Interpolate(a1.StaticPressure())
	if err != nil {
		return A1A2OperatingPoint{}, err
	}

	return NewA1A2OperatingPoint(a1.Speed(), a1.InletAirflow(), corresponding.OutletAirflow(), a1.StaticPressure(),
		a1.BrakeHorsepower()), nil
}

// A1A2FanCurve scales the A1 and A2 tests to the fan diameter and pairs every A1 point with the outlet airflow
// at its static pressure. A1 points outside the pressure range of the A2 test are left out unless
// StrictRangeOption is given.
func (r *A2Report) A1A2FanCurve(fanDiameter units.FanDiameter, options ...Option) (
	*curve.FanCurve[A1A2OperatingPoint], error) {
	opts := optionNew(options...)

	if r.A1Report == nil {
		return nil, fmt.Errorf("%w: a2 report %q has no a1 report", curve.ErrEmptyCurve, r.ID)
	}

	a1Curve, err := r.A1Report.FanCurve()
	if err != nil {
		return nil, err
	}

	a1Curve, err = a1Curve.ScaleDiameter(r.A1Report.FanDiameter(), fanDiameter)
	if err != nil {
		return nil, err
	}

	a2Curve, err := r.FanCurve()
	if err != nil {
		return nil, err
	}

	a2Curve, err = a2Curve.ScaleDiameter(r.FanDiameter(), fanDiameter)
	if err != nil {
		return nil, err
	}

	points := make([]A1A2OperatingPoint, 0, a1Curve.Len())

	for _, a1 := range a1Curve.Points() {
		point, err := augmentWithOutletAirflow(a1, a2Curve)
		if err != nil {
			if errors.Is(err, curve.ErrOutOfBounds) && !opts.strictRange {
				continue
			}

			return nil, err
		}

		points = append(points, point)
	}

	return curve.NewFanCurve(points...), nil
}

// InducedRatioAt interpolates the augmented curve at the static pressure.
func InducedRatioAt(c *curve.FanCurve[A1A2OperatingPoint], staticPressure units.StaticPressure) (float64, error) {
	p, err := c.Interpolate(staticPressure)
	if err != nil {
		return 0, err
	}

	return p.InducedRatio(), nil
}

// A1A2Row is one augmented point in plain units.
type A1A2Row struct {
	StaticPressure  float64 `json:"static_pressure" yaml:"static_pressure"`
	InletCFM        float64 `json:"inlet_cfm" yaml:"inlet_cfm"`
	OutletCFM       float64 `json:"outlet_cfm" yaml:"outlet_cfm"`
	BrakeHorsepower float64 `json:"brake_horsepower" yaml:"brake_horsepower"`
	FanSpeedRPM     float64 `json:"fan_speed_rpm" yaml:"fan_speed_rpm"`
	InducedRatio    float64 `json:"induced_ratio" yaml:"induced_ratio"`
}

func A1A2Rows(c *curve.FanCurve[A1A2OperatingPoint]) []A1A2Row {
	points := c.Points()
	rows := make([]A1A2Row, 0, len(points))

	for _, p := range points {
		rows = append(rows, A1A2Row{
			StaticPressure:  p.StaticPressure().Inches(),
			InletCFM:        p.InletAirflow().CFM(),
			OutletCFM:       p.OutletAirflow().CFM(),
			BrakeHorsepower: p.BrakeHorsepower().HP(),
			FanSpeedRPM:     p.Speed().RPM(),
			InducedRatio:    p.InducedRatio(),
		})
	}

	return rows
}
