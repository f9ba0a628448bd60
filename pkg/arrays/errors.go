package arrays

import "errors"

var (
	ErrRaggedRows   = errors.New("rows have different lengths")
	ErrGridTooLarge = errors.New("grid cell count overflows int")
)
