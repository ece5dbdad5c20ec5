package wavelet

import "errors"

// Errors returned by the wavelet functions. They are wrapped with detail
// and can be matched with [errors.Is].
var (
	ErrInvalidRange     = errors.New("wavelet: invalid period range")
	ErrInvalidParameter = errors.New("wavelet: invalid parameter")
	ErrDegenerateGrid   = errors.New("wavelet: degenerate scale grid")
	ErrEmptyInput       = errors.New("wavelet: empty input")
	ErrNonFiniteInput   = errors.New("wavelet: non-finite input")
	ErrEmptyBand        = errors.New("wavelet: no scales in period band")
	ErrShapeMismatch    = errors.New("wavelet: shape mismatch")
)
