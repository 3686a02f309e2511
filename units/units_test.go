package units

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := NewStaticPressure(3)
	b := NewStaticPressure(1.5)

	assert.EqualValues(t, -3, Neg(a))
	assert.EqualValues(t, 4.5, Add(a, b))
	assert.EqualValues(t, 1.5, Sub(a, b))
	assert.EqualValues(t, 6, Mul(a, 2))
	assert.EqualValues(t, 1, Div(a, 3))
	assert.EqualValues(t, 2, Ratio(a, b))
	assert.EqualValues(t, 2.25, Lerp(b, a, 0.5))

	assert.True(t, math.IsInf(Ratio(a, NewStaticPressure(0)), 1))
}

func TestSquaredRelativeError(t *testing.T) {
	assert.InDelta(t, 0.01, SquaredRelativeError(NewFanSpeed(1100), NewFanSpeed(1000)), 1e-15)
	assert.EqualValues(t, 0, SquaredRelativeError(NewBrakeHorsepower(7.481), NewBrakeHorsepower(7.481)))
}

func TestDiameterAffinity(t *testing.T) {
	from := NewFanDiameter(18.25)
	to := NewFanDiameter(27)
	k := 27 / 18.25

	assert.EqualValues(t, 1750, NewFanSpeed(1750).ScaleDiameter(from, to))
	assert.InEpsilon(t, 7749*k*k*k, NewInletAirflow(7749).ScaleDiameter(from, to).CFM(), 1e-12)
	assert.InEpsilon(t, 9316*k*k*k, NewOutletAirflow(9316).ScaleDiameter(from, to).CFM(), 1e-12)
	assert.InEpsilon(t, 3.789*k*k, NewStaticPressure(3.789).ScaleDiameter(from, to).Inches(), 1e-12)
	assert.InEpsilon(t, 7.481*k*k*k*k*k, NewBrakeHorsepower(7.481).ScaleDiameter(from, to).HP(), 1e-12)
}

func TestAirflowAffinity(t *testing.T) {
	from := NewInletAirflow(8884)
	to := NewInletAirflow(7749)
	r := 7749.0 / 8884.0

	assert.InEpsilon(t, 1750*r, NewFanSpeed(1750).ScaleAirflow(from, to).RPM(), 1e-12)
	assert.InEpsilon(t, 2.593*r*r, NewStaticPressure(2.593).ScaleAirflow(from, to).Inches(), 1e-12)
	assert.InEpsilon(t, 7.243*r*r*r, NewBrakeHorsepower(7.243).ScaleAirflow(from, to).HP(), 1e-12)
	assert.InEpsilon(t, 12000*r, NewOutletAirflow(12000).ScaleAirflow(from, to).CFM(), 1e-12)

	a, err := from.ScaleAirflow(from, to)
	assert.Nil(t, err)
	assert.EqualValues(t, to, a)
}

func TestRoundTrip(t *testing.T) {
	d1 := NewFanDiameter(18.25)
	d2 := NewFanDiameter(36)

	p := NewStaticPressure(1.911)
	assert.InEpsilon(t, p.Inches(), p.ScaleDiameter(d1, d2).ScaleDiameter(d2, d1).Inches(), 1e-9)

	b := NewBrakeHorsepower(0.85)
	assert.InEpsilon(t, b.HP(), b.ScaleDiameter(d1, d2).ScaleDiameter(d2, d1).HP(), 1e-9)

	q := NewInletAirflow(1281)
	assert.InEpsilon(t, q.CFM(), q.ScaleDiameter(d1, d2).ScaleDiameter(d2, d1).CFM(), 1e-9)
}

func TestSameTypeScaleContext(t *testing.T) {
	_, err := NewInletAirflow(1000).ScaleAirflow(NewInletAirflow(1001), NewInletAirflow(2000))
	assert.True(t, errors.Is(err, ErrInvalidScaleContext))

	_, err = NewFanDiameter(27).ScaleDiameter(NewFanDiameter(18.25), NewFanDiameter(36))
	assert.True(t, errors.Is(err, ErrInvalidScaleContext))

	d, err := NewFanDiameter(27).ScaleDiameter(NewFanDiameter(27), NewFanDiameter(36))
	assert.Nil(t, err)
	assert.EqualValues(t, 36, d)
}
