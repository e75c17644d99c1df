package axis

import "errors"

var ErrDegenerateRange = errors.New("input range is empty")
