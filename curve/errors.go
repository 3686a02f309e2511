package curve

import (
	"errors"

	"github.com/sgostarter/libfanperf/units"
)

var (
	ErrOutOfBounds             = errors.New("out of bounds")
	ErrDegenerateInterpolation = errors.New("degenerate interpolation")
	ErrInconsistentCurve       = errors.New("inconsistent curve")
	ErrInvalidScaleContext     = units.ErrInvalidScaleContext
	ErrEmptyCurve              = errors.New("empty curve")
)
