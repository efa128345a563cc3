package eye

import "errors"

var (
	ErrGeometry     = errors.New("eye: invalid geometry")
	ErrTextureSize  = errors.New("eye: texture size does not match geometry")
	ErrInvalidScale = errors.New("eye: scale must be a positive finite number")
	ErrNilSource    = errors.New("eye: clock and random source are required")
	ErrEyeIndex     = errors.New("eye: eye index out of range")
	ErrIrisRange    = errors.New("eye: invalid iris scale range")
	ErrFilter       = errors.New("eye: unknown filter")
)
