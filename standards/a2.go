package standards

import (
	"fmt"

	"github.com/sgostarter/libfanperf/curve"
	"github.com/sgostarter/libfanperf/units"
)

type A2OperatingPoint struct {
	speed          units.FanSpeed
	outletAirflow  units.OutletAirflow
	staticPressure units.StaticPressure
}

func NewA2OperatingPoint(speed units.FanSpeed, outletAirflow units.OutletAirflow,
	staticPressure units.StaticPressure) A2OperatingPoint {
	return A2OperatingPoint{
		speed:          speed,
		outletAirflow:  outletAirflow,
		staticPressure: staticPressure,
	}
}

func (p A2OperatingPoint) Speed() units.FanSpeed {
	return p.speed
}

func (p A2OperatingPoint) OutletAirflow() units.OutletAirflow {
	return p.outletAirflow
}

func (p A2OperatingPoint) StaticPressure() units.StaticPressure {
	return p.staticPressure
}

func (p A2OperatingPoint) ScaleDiameter(from, to units.FanDiameter) (A2OperatingPoint, error) {
	return NewA2OperatingPoint(
		p.speed.ScaleDiameter(from, to),
		p.outletAirflow.ScaleDiameter(from, to),
		p.staticPressure.ScaleDiameter(from, to),
	), nil
}

// InterpolateBetween reads the outlet airflow off a constant speed curve.
func (p A2OperatingPoint) InterpolateBetween(high A2OperatingPoint, target units.StaticPressure) (
	A2OperatingPoint, error) {
	if !sameQuantity(p.speed, high.speed) {
		return p, fmt.Errorf("%w: speed %v and %v", curve.ErrInconsistentCurve, p.speed.RPM(), high.speed.RPM())
	}

	outletAirflow, err := curve.InterpolateLinear(p.staticPressure, p.outletAirflow, high.staticPressure,
		high.outletAirflow, target)
	if err != nil {
		return p, err
	}

	return NewA2OperatingPoint(p.speed, outletAirflow, target), nil
}

func (p A2OperatingPoint) ErrorFrom(other A2OperatingPoint) float64 {
	return (units.SquaredRelativeError(p.speed, other.speed) +
		units.SquaredRelativeError(p.outletAirflow, other.outletAirflow) +
		units.SquaredRelativeError(p.staticPressure, other.staticPressure)) / 3
}

type A2Parameters struct {
	RPM float64 `json:"rpm" yaml:"rpm"`
}

type A2Determination struct {
	CFM            float64 `json:"cfm" yaml:"cfm"`
	StaticPressure float64 `json:"static_pressure" yaml:"static_pressure"`
}

// A2Report is an AMCA 210 A2 (2010) test of an induced-flow fan: outlet airflow, entrained air included,
// measured with a nozzle fitted. A1Report is the inlet referenced test of the same fan.
type A2Report struct {
	ID                   string            `json:"id" yaml:"id"`
	A1Report             *A1Report         `json:"a1_report" yaml:"a1_report"`
	InducedFlowFanSizeID string            `json:"induced_flow_fan_size_id,omitempty" yaml:"induced_flow_fan_size_id,omitempty"`
	NozzleID             string            `json:"nozzle_id,omitempty" yaml:"nozzle_id,omitempty"`
	FanSize              FanSize           `json:"fan_size" yaml:"fan_size"`
	FanSeries            FanSeries         `json:"fan_series" yaml:"fan_series"`
	Parameters           A2Parameters      `json:"parameters" yaml:"parameters"`
	Determinations       []A2Determination `json:"determinations" yaml:"determinations"`
}

func (r *A2Report) FanDiameter() units.FanDiameter {
	return r.FanSize.FanDiameter()
}

func (r *A2Report) FanCurve() (*curve.FanCurve[A2OperatingPoint], error) {
	if len(r.Determinations) == 0 {
		return nil, fmt.Errorf("%w: a2 report %q has no determinations", curve.ErrEmptyCurve, r.ID)
	}

	points := make([]A2OperatingPoint, 0, len(r.Determinations))

	for _, d := range r.Determinations {
		points = append(points, NewA2OperatingPoint(
			units.NewFanSpeed(r.Parameters.RPM),
			units.NewOutletAirflow(d.CFM),
			units.NewStaticPressure(d.StaticPressure),
		))
	}

	return curve.NewFanCurve(points...), nil
}
