package selection

import (
	"context"

	"github.com/sgostarter/libfanperf/standards"
)

// Query is a requested duty for a fan of the given diameter.
type Query struct {
	FanDiameter    float64 `json:"fan_diameter" yaml:"fan_diameter"`
	InletCFM       float64 `json:"inlet_cfm" yaml:"inlet_cfm"`
	StaticPressure float64 `json:"static_pressure" yaml:"static_pressure"`
}

type OperatingPointResult struct {
	FanSpeedRPM     float64 `json:"fan_speed_rpm" yaml:"fan_speed_rpm"`
	BrakeHorsepower float64 `json:"brake_horsepower" yaml:"brake_horsepower"`
}

type Selector interface {
	OperatingPointFor(ctx context.Context, a1ReportID string, q Query) (*OperatingPointResult, error)
	InducedFlowCurve(ctx context.Context, a2ReportID string, fanDiameterInches float64) ([]standards.A1A2Row, error)
}
