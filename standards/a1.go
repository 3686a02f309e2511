package standards

import (
	"fmt"

	"github.com/sgostarter/libfanperf/curve"
	"github.com/sgostarter/libfanperf/units"
)

type A1OperatingPoint struct {
	speed           units.FanSpeed
	inletAirflow    units.InletAirflow
	staticPressure  units.StaticPressure
	brakeHorsepower units.BrakeHorsepower
}

func NewA1OperatingPoint(speed units.FanSpeed, inletAirflow units.InletAirflow, staticPressure units.StaticPressure,
	brakeHorsepower units.BrakeHorsepower) A1OperatingPoint {
	return A1OperatingPoint{
		speed:           speed,
		inletAirflow:    inletAirflow,
		staticPressure:  staticPressure,
		brakeHorsepower: brakeHorsepower,
	}
}

func (p A1OperatingPoint) Speed() units.FanSpeed {
	return p.speed
}

func (p A1OperatingPoint) InletAirflow() units.InletAirflow {
	return p.inletAirflow
}

func (p A1OperatingPoint) StaticPressure() units.StaticPressure {
	return p.staticPressure
}

func (p A1OperatingPoint) BrakeHorsepower() units.BrakeHorsepower {
	return p.brakeHorsepower
}

func (p A1OperatingPoint) ScaleDiameter(from, to units.FanDiameter) (A1OperatingPoint, error) {
	return NewA1OperatingPoint(
		p.speed.ScaleDiameter(from, to),
		p.inletAirflow.ScaleDiameter(from, to),
		p.staticPressure.ScaleDiameter(from, to),
		p.brakeHorsepower.ScaleDiameter(from, to),
	), nil
}

func (p A1OperatingPoint) ScaleAirflow(from, to units.InletAirflow) (A1OperatingPoint, error) {
	inletAirflow, err := p.inletAirflow.ScaleAirflow(from, to)
	if err != nil {
		return p, err
	}

	return NewA1OperatingPoint(
		p.speed.ScaleAirflow(from, to),
		inletAirflow,
		p.staticPressure.ScaleAirflow(from, to),
		p.brakeHorsepower.ScaleAirflow(from, to),
	), nil
}

// InterpolateBetween requires both samples at the same inlet airflow: speed is solved from the pressure,
// horsepower is linear.
func (p A1OperatingPoint) InterpolateBetween(high A1OperatingPoint, target units.StaticPressure) (
	A1OperatingPoint, error) {
	if !sameQuantity(p.inletAirflow, high.inletAirflow) {
		return p, fmt.Errorf("%w: inlet airflow %v and %v", curve.ErrInconsistentCurve,
			p.inletAirflow.CFM(), high.inletAirflow.CFM())
	}

	speed, err := curve.InterpolateSpeed(p.staticPressure, p.speed, high.staticPressure, high.speed, target)
	if err != nil {
		return p, err
	}

	bhp, err := curve.InterpolateLinear(p.staticPressure, p.brakeHorsepower, high.staticPressure,
		high.brakeHorsepower, target)
	if err != nil {
		return p, err
	}

	return NewA1OperatingPoint(speed, p.inletAirflow, target, bhp), nil
}

func (p A1OperatingPoint) ErrorFrom(other A1OperatingPoint) float64 {
	return (units.SquaredRelativeError(p.speed, other.speed) +
		units.SquaredRelativeError(p.inletAirflow, other.inletAirflow) +
		units.SquaredRelativeError(p.staticPressure, other.staticPressure) +
		units.SquaredRelativeError(p.brakeHorsepower, other.brakeHorsepower)) / 4
}

// A1InterpolationPoint answers a fan selection: the speed and power needed at the requested duty.
type A1InterpolationPoint struct {
	Speed           units.FanSpeed
	BrakeHorsepower units.BrakeHorsepower
}

func (p A1InterpolationPoint) ErrorFrom(other A1InterpolationPoint) float64 {
	return (units.SquaredRelativeError(p.Speed, other.Speed) +
		units.SquaredRelativeError(p.BrakeHorsepower, other.BrakeHorsepower)) / 2
}

type A1Parameters struct {
	RPM float64 `json:"rpm" yaml:"rpm"`
}

type A1Determination struct {
	CFM             float64 `json:"cfm" yaml:"cfm"`
	StaticPressure  float64 `json:"static_pressure" yaml:"static_pressure"`
	BrakeHorsepower float64 `json:"brake_horsepower" yaml:"brake_horsepower"`
}

// A1Report is an AMCA 210 A1 (2010) test: inlet airflow measured at one speed on one fan size.
type A1Report struct {
	ID             string            `json:"id" yaml:"id"`
	FanSize        FanSize           `json:"fan_size" yaml:"fan_size"`
	FanSeries      FanSeries         `json:"fan_series" yaml:"fan_series"`
	Parameters     A1Parameters      `json:"parameters" yaml:"parameters"`
	Determinations []A1Determination `json:"determinations" yaml:"determinations"`
}

func (r *A1Report) FanDiameter() units.FanDiameter {
	return r.FanSize.FanDiameter()
}

// FanCurve builds the curve at the report's own diameter and speed.
func (r *A1Report) FanCurve() (*curve.FanCurve[A1OperatingPoint], error) {
	if len(r.Determinations) == 0 {
		return nil, fmt.Errorf("%w: a1 report %q has no determinations", curve.ErrEmptyCurve, r.ID)
	}

	points := make([]A1OperatingPoint, 0, len(r.Determinations))

	for _, d := range r.Determinations {
		points = append(points, NewA1OperatingPoint(
			units.NewFanSpeed(r.Parameters.RPM),
			units.NewInletAirflow(d.CFM),
			units.NewStaticPressure(d.StaticPressure),
			units.NewBrakeHorsepower(d.BrakeHorsepower),
		))
	}

	return curve.NewFanCurve(points...), nil
}

// OperatingPointFor scales the tested curve to the fan diameter, then to the inlet airflow, and reads off
// the speed and power at the static pressure.
func (r *A1Report) OperatingPointFor(fanDiameter units.FanDiameter, inletAirflow units.InletAirflow,
	staticPressure units.StaticPressure) (ip A1InterpolationPoint, err error) {
	fanCurve, err := r.FanCurve()
	if err != nil {
		return
	}

	fanCurve, err = fanCurve.ScaleDiameter(r.FanDiameter(), fanDiameter)
	if err != nil {
		return
	}

	fanCurve, err = curve.ScaleToAirflow(fanCurve, inletAirflow)
	if err != nil {
		return
	}

	point, err := fanCurve.Interpolate(staticPressure)
	if err != nil {
		return
	}

	ip = A1InterpolationPoint{
		Speed:           point.Speed(),
		BrakeHorsepower: point.BrakeHorsepower(),
	}

	return
}
