package processor

import "errors"

type Kind int

const (
	InvalidInput Kind = iota + 1
	ProcessingFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case ProcessingFailure:
		return "processing_failure"
	default:
		return "unknown"
	}
}

// ProcessingError is the only error type Process returns.
type ProcessingError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *ProcessingError) Error() string {
	return e.Message
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

var ErrInvalidInput = &ProcessingError{Kind: InvalidInput, Message: "invalid input"}

// Failure wraps err as a ProcessingFailure carrying its message.
func Failure(err error) *ProcessingError {
	return &ProcessingError{Kind: ProcessingFailure, Message: err.Error(), Err: err}
}

// KindOf reports the kind of err. Unclassified errors are processing failures.
func KindOf(err error) Kind {
	var pe *ProcessingError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ProcessingFailure
}

func IsInvalidInput(err error) bool {
	return err != nil && KindOf(err) == InvalidInput
}
