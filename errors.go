package unitconv

import "errors"

// Every failed conversion returns one of these (possibly wrapped with the
// offending key). Callers treat any error as "conversion not possible".
var (
	ErrInvalidValue    = errors.New("invalid value")
	ErrUnknownUnit     = errors.New("unknown unit")
	ErrUnknownCategory = errors.New("unknown category")
	ErrRatesRequired   = errors.New("currency rates are required for currency conversion")
	ErrMissingRate     = errors.New("missing currency rate")
	ErrDegenerateUnit  = errors.New("unit has zero scale factor")
)
