package bigbyte

import "errors"

var (
	ErrNilBase         = errors.New("bigbyte: nil base array")
	ErrOutOfRange      = errors.New("bigbyte: index out of range")
	ErrInvalidArgument = errors.New("bigbyte: invalid argument")
	ErrTooLarge        = errors.New("bigbyte: too large for a contiguous buffer")
	ErrTruncatedSource = errors.New("bigbyte: source ended before declared length")
)
