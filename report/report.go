package report

import (
	"fmt"
	"math"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libfanperf/standards"
	"github.com/spf13/cast"
)

func NewReportID() string {
	return cast.ToString(snowflake.ID())
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func nonNegativeFinite(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

func invalid(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", commerr.ErrInvalidArgument, fmt.Sprintf(format, a...))
}

func ValidateA1Report(r *standards.A1Report) error {
	if r == nil {
		return invalid("nil a1 report")
	}

	if !positiveFinite(r.FanSize.Diameter) {
		return invalid("a1 report %q: fan diameter %v", r.ID, r.FanSize.Diameter)
	}

	if !positiveFinite(r.Parameters.RPM) {
		return invalid("a1 report %q: rpm %v", r.ID, r.Parameters.RPM)
	}

	if len(r.Determinations) == 0 {
		return invalid("a1 report %q: no determinations", r.ID)
	}

	for idx, d := range r.Determinations {
		if !nonNegativeFinite(d.CFM) || !nonNegativeFinite(d.StaticPressure) || !nonNegativeFinite(d.BrakeHorsepower) {
			return invalid("a1 report %q: determination %d %+v", r.ID, idx, d)
		}
	}

	return nil
}

func ValidateA2Report(r *standards.A2Report) error {
	if r == nil {
		return invalid("nil a2 report")
	}

	if err := ValidateA1Report(r.A1Report); err != nil {
		return fmt.Errorf("a2 report %q: %w", r.ID, err)
	}

	if !positiveFinite(r.FanSize.Diameter) {
		return invalid("a2 report %q: fan diameter %v", r.ID, r.FanSize.Diameter)
	}

	if !positiveFinite(r.Parameters.RPM) {
		return invalid("a2 report %q: rpm %v", r.ID, r.Parameters.RPM)
	}

	if len(r.Determinations) == 0 {
		return invalid("a2 report %q: no determinations", r.ID)
	}

	for idx, d := range r.Determinations {
		if !nonNegativeFinite(d.CFM) || !nonNegativeFinite(d.StaticPressure) {
			return invalid("a2 report %q: determination %d %+v", r.ID, idx, d)
		}
	}

	return nil
}

func CloneA1Report(r *standards.A1Report) *standards.A1Report {
	if r == nil {
		return nil
	}

	c := *r
	c.Determinations = append([]standards.A1Determination(nil), r.Determinations...)

	return &c
}

func CloneA2Report(r *standards.A2Report) *standards.A2Report {
	if r == nil {
		return nil
	}

	c := *r
	c.A1Report = CloneA1Report(r.A1Report)
	c.Determinations = append([]standards.A2Determination(nil), r.Determinations...)

	return &c
}
