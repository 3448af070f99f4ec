package modelfile

import "errors"

var (
	ErrEmptyFile = errors.New("modelfile: empty file, missing R byte")
	ErrTruncated = errors.New("modelfile: fewer bytes than R implies")
	ErrInvalidR  = errors.New("modelfile: R must be positive")
)
