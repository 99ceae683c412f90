package validators

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownRule is returned by [RuleValidator.Check] when the rule name
	// is absent from the registry. It signals a programming error, not a
	// user input problem.
	ErrUnknownRule = errors.New("unknown validation rule")

	// ErrNoCounter is returned by [RuleValidator.Unique] when the validator
	// was constructed without a [Counter].
	ErrNoCounter = errors.New("unique check requires a counter")

	// ErrUnsupportedType is returned when a form validator receives a value it does not handle.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrUnknownField is returned when a requested field has no checks.
	ErrUnknownField = errors.New("unknown field for validation")
)

// ValidationError carries the rendered messages of a failed validation
// pass in the order the checks were performed.
type ValidationError struct {
	Messages []string
}

// NewValidationError copies messages into a new *ValidationError.
func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: append([]string(nil), messages...)}
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// AsValidationError reports whether err wraps a *ValidationError and
// returns it.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
