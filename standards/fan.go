package standards

import (
	"fmt"
	"math"

	"github.com/sgostarter/libfanperf/units"
)

type FanType string

const (
	FanTypeCentrifugal FanType = "centrifugal"
	FanTypeMixedFlow   FanType = "mixed_flow"
	FanTypeAxial       FanType = "axial"
)

func AllFanTypes() []FanType {
	return []FanType{FanTypeCentrifugal, FanTypeMixedFlow, FanTypeAxial}
}

func ParseFanType(s string) (FanType, error) {
	for _, t := range AllFanTypes() {
		if string(t) == s {
			return t, nil
		}
	}

	return "", fmt.Errorf("unknown fan type %q", s)
}

func (t FanType) String() string {
	return string(t)
}

type FanSeries struct {
	ID      string  `json:"id" yaml:"id"`
	FanType FanType `json:"fan_type" yaml:"fan_type"`
}

type FanSize struct {
	ID          string  `json:"id" yaml:"id"`
	FanSeriesID string  `json:"fan_series_id" yaml:"fan_series_id"`
	Diameter    float64 `json:"diameter" yaml:"diameter"`
	OutletArea  float64 `json:"outlet_area,omitempty" yaml:"outlet_area,omitempty"`
}

func (s FanSize) FanDiameter() units.FanDiameter {
	return units.NewFanDiameter(s.Diameter)
}

const sameQuantityTolerance = 1e-9

// sameQuantity tells whether two samples hold the same value of a quantity that a curve keeps constant.
func sameQuantity[Q units.Quantity](a, b Q) bool {
	if a == b {
		return true
	}

	return math.Abs(float64(a-b)) <= sameQuantityTolerance*math.Max(math.Abs(float64(a)), math.Abs(float64(b)))
}
