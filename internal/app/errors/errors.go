package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrNilFactory    = errors.New("process factory is nil")
	ErrNilDescriptor = errors.New("process descriptor is nil")
	ErrNilHandle     = errors.New("process factory returned nil handle")

	ErrFailedToReadDescriptor  = errors.New("failed to read descriptor file")
	ErrFailedToParseDescriptor = errors.New("failed to parse descriptor file")
	ErrExecutableRequired      = errors.New("descriptor requires an executable path")
	ErrFailedToLoadEnvFile     = errors.New("failed to load env file")

	ErrFailedToCreatePipe       = errors.New("failed to create pipe")
	ErrFailedToStartProcess     = errors.New("failed to start process")
	ErrFailedToTerminateProcess = errors.New("failed to terminate process")

	ErrStreamCancelled = errors.New("stream cancelled by subscriber")

	ErrInvalidGlobPattern = errors.New("invalid glob pattern")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
