package selection

import (
	"errors"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libfanperf/curve"
)

// UserMessage turns an error from a selection call into text for the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, curve.ErrOutOfBounds):
		return "requested operating condition is outside the tested envelope"
	case errors.Is(err, curve.ErrDegenerateInterpolation):
		return "the test data cannot be solved at the requested operating condition"
	case errors.Is(err, curve.ErrInconsistentCurve), errors.Is(err, curve.ErrInvalidScaleContext):
		return "the test data for this fan is inconsistent"
	case errors.Is(err, curve.ErrEmptyCurve):
		return "the test report has no determinations"
	case errors.Is(err, commerr.ErrNotFound):
		return "test report not found"
	case errors.Is(err, commerr.ErrInvalidArgument):
		return "invalid request"
	default:
		return "internal error"
	}
}
