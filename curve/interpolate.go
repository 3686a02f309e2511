package curve

import (
	"fmt"
	"math"

	"github.com/sgostarter/libfanperf/units"
)

func checkBracket(lowX, highX, target units.StaticPressure) error {
	if !(lowX <= target && target <= highX) {
		return fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfBounds, target.Inches(), lowX.Inches(), highX.Inches())
	}

	return nil
}

// InterpolateLinear interpolates a quantity against static pressure with a straight line.
func InterpolateLinear[Q units.Quantity](lowX units.StaticPressure, low Q, highX units.StaticPressure, high Q,
	target units.StaticPressure) (q Q, err error) {
	err = checkBracket(lowX, highX, target)
	if err != nil {
		return
	}

	if target == lowX {
		q = low

		return
	}

	if target == highX {
		q = high

		return
	}

	q = units.Lerp(low, high, units.Ratio(target-lowX, highX-lowX))

	return
}

// InterpolateSpeed finds the speed that develops the target pressure between two samples taken at the same
// airflow. Pressure varies with the square of speed there, so the speed is the root of
// a*rpm^2 + b*rpm + c = 0 that passes through both samples.
func InterpolateSpeed(lowX units.StaticPressure, low units.FanSpeed, highX units.StaticPressure, high units.FanSpeed,
	target units.StaticPressure) (s units.FanSpeed, err error) {
	err = checkBracket(lowX, highX, target)
	if err != nil {
		return
	}

	if target == lowX {
		s = low

		return
	}

	if target == highX {
		s = high

		return
	}

	lowRPM := low.RPM()
	highRPM := high.RPM()

	if lowRPM == 0 || highRPM == 0 || math.IsInf(lowRPM, 0) || math.IsInf(highRPM, 0) {
		err = fmt.Errorf("%w: speeds %v, %v", ErrDegenerateInterpolation, lowRPM, highRPM)

		return
	}

	a := lowX.Inches()/lowRPM - highX.Inches()/highRPM
	b := highX.Inches()*lowRPM/highRPM - lowX.Inches()*highRPM/lowRPM
	c := target.Inches() * (highRPM - lowRPM)

	if a == 0 || math.IsNaN(a) {
		err = fmt.Errorf("%w: zero leading coefficient", ErrDegenerateInterpolation)

		return
	}

	// explicit conversions keep each product rounded, no fused multiply-add
	discriminant := float64(b*b) - float64(4*a*c)
	if !(discriminant > 0) {
		err = fmt.Errorf("%w: discriminant %v", ErrDegenerateInterpolation, discriminant)

		return
	}

	rpm := (-b - math.Sqrt(discriminant)) / (2 * a)
	if math.IsNaN(rpm) || math.IsInf(rpm, 0) {
		err = fmt.Errorf("%w: speed %v", ErrDegenerateInterpolation, rpm)

		return
	}

	s = units.NewFanSpeed(rpm)

	return
}
