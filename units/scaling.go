package units

import "fmt"

//
// Fan affinity laws.
//
// Diameter change at constant speed: airflow ~ k^3, pressure ~ k^2, power ~ k^5 with k = D2/D1.
// Speed change at constant diameter, expressed as a change of inlet airflow: speed ~ r, pressure ~ r^2,
// power ~ r^3 with r = Q2/Q1.
//

func diameterRatio(from, to FanDiameter) float64 {
	return Ratio(to, from)
}

func airflowRatio(from, to InletAirflow) float64 {
	return Ratio(to, from)
}

func (s FanSpeed) ScaleDiameter(_, _ FanDiameter) FanSpeed {
	return s
}

func (s FanSpeed) ScaleAirflow(from, to InletAirflow) FanSpeed {
	return Mul(s, airflowRatio(from, to))
}

func (a InletAirflow) ScaleDiameter(from, to FanDiameter) InletAirflow {
	return Mul(a, powi(diameterRatio(from, to), 3))
}

// ScaleAirflow moves an airflow to the airflow it is scaled to. The receiver must be the from value.
func (a InletAirflow) ScaleAirflow(from, to InletAirflow) (InletAirflow, error) {
	if a != from {
		return a, fmt.Errorf("%w: inlet airflow %v scaled from %v", ErrInvalidScaleContext, a.CFM(), from.CFM())
	}

	return to, nil
}

func (a OutletAirflow) ScaleDiameter(from, to FanDiameter) OutletAirflow {
	return Mul(a, powi(diameterRatio(from, to), 3))
}

// ScaleAirflow follows the inlet: at a fixed diameter both flows are proportional to speed.
func (a OutletAirflow) ScaleAirflow(from, to InletAirflow) OutletAirflow {
	return Mul(a, airflowRatio(from, to))
}

func (p StaticPressure) ScaleDiameter(from, to FanDiameter) StaticPressure {
	return Mul(p, powi(diameterRatio(from, to), 2))
}

func (p StaticPressure) ScaleAirflow(from, to InletAirflow) StaticPressure {
	return Mul(p, powi(airflowRatio(from, to), 2))
}

func (b BrakeHorsepower) ScaleDiameter(from, to FanDiameter) BrakeHorsepower {
	return Mul(b, powi(diameterRatio(from, to), 5))
}

func (b BrakeHorsepower) ScaleAirflow(from, to InletAirflow) BrakeHorsepower {
	return Mul(b, powi(airflowRatio(from, to), 3))
}

func (d FanDiameter) ScaleDiameter(from, to FanDiameter) (FanDiameter, error) {
	if d != from {
		return d, fmt.Errorf("%w: fan diameter %v scaled from %v", ErrInvalidScaleContext, d.Inches(), from.Inches())
	}

	return to, nil
}
