package units

import "errors"

var ErrInvalidScaleContext = errors.New("invalid scale context")
