package cmdargs

import "errors"

var (
	// Contract violations
	ErrAlreadyParsed = errors.New("cmdargs: arguments already parsed, reset first")
	ErrDuplicateArg  = errors.New("cmdargs: argument already registered")
	ErrEmptyName     = errors.New("cmdargs: argument name is empty")
	ErrInvalidType   = errors.New("cmdargs: invalid argument type")
	ErrNotParsed     = errors.New("cmdargs: command not parsed successfully")
	ErrUnknownArg    = errors.New("cmdargs: argument not registered")
	ErrNotCaptured   = errors.New("cmdargs: argument has no value")
	ErrTypeMismatch  = errors.New("cmdargs: argument type mismatch")

	// User input errors
	ErrMissingArg   = errors.New("cmdargs: required argument missing")
	ErrNoValue      = errors.New("cmdargs: no value for argument")
	ErrInvalidValue = errors.New("cmdargs: invalid argument value")
)
