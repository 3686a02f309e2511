package units

// FanSpeed is a rotational speed in revolutions per minute.
type FanSpeed float64

func NewFanSpeed(rpm float64) FanSpeed {
	return FanSpeed(rpm)
}

func (s FanSpeed) RPM() float64 {
	return float64(s)
}

// InletAirflow is the volumetric flow drawn into the fan, in cubic feet per minute.
type InletAirflow float64

func NewInletAirflow(cfm float64) InletAirflow {
	return InletAirflow(cfm)
}

func (a InletAirflow) CFM() float64 {
	return float64(a)
}

// OutletAirflow is the volumetric flow leaving an induced-flow fan, entrained air included.
type OutletAirflow float64

func NewOutletAirflow(cfm float64) OutletAirflow {
	return OutletAirflow(cfm)
}

func (a OutletAirflow) CFM() float64 {
	return float64(a)
}

// StaticPressure is measured in inches of water gauge.
type StaticPressure float64

func NewStaticPressure(inches float64) StaticPressure {
	return StaticPressure(inches)
}

func (p StaticPressure) Inches() float64 {
	return float64(p)
}

type BrakeHorsepower float64

func NewBrakeHorsepower(hp float64) BrakeHorsepower {
	return BrakeHorsepower(hp)
}

func (b BrakeHorsepower) HP() float64 {
	return float64(b)
}

// FanDiameter is the impeller diameter in inches.
type FanDiameter float64

func NewFanDiameter(inches float64) FanDiameter {
	return FanDiameter(inches)
}

func (d FanDiameter) Inches() float64 {
	return float64(d)
}
