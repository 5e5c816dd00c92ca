package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrTypeIsInvalid     = errors.New("type is invalid")
)

// IsInvalidArgument reports whether err is caused by a missing, unknown or
// out-of-range argument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange) ||
		errors.Is(err, ErrValueIsRequired)
}

// ValueIsInvalidError reports a value that is not accepted for ParamName.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside the inclusive [Min, Max] range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %v, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), e.Min, e.Max)
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing value. When Message is set it replaces
// the generated text, which lets callers keep a fixed, user-facing wording.
type ValueIsRequiredError struct {
	ParamName string
	Message   string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func NewValueIsRequiredErrorWithMessage(paramName, message string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Message: message}
}

func (e *ValueIsRequiredError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
	if e.Message != "" {
		msg = e.Message
	}
	return withCause(msg, e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// TypeIsInvalidError reports a value whose dynamic type is not Expected.
type TypeIsInvalidError struct {
	ParamName string
	Expected  string
	Value     any
	Cause     error
}

func NewTypeIsInvalidError(paramName, expected string, value any) *TypeIsInvalidError {
	return &TypeIsInvalidError{ParamName: paramName, Expected: expected, Value: value}
}

func NewTypeIsInvalidErrorWithCause(paramName, expected string, value any, cause error) *TypeIsInvalidError {
	return &TypeIsInvalidError{ParamName: paramName, Expected: expected, Value: value, Cause: cause}
}

func (e *TypeIsInvalidError) Error() string {
	msg := fmt.Sprintf("%s: %s must be %s, got %T", ErrTypeIsInvalid, e.ParamName, e.Expected, e.Value)
	return withCause(msg, e.Cause)
}

func (e *TypeIsInvalidError) Unwrap() error {
	return ErrTypeIsInvalid
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

// sanitize keeps error messages on a single line.
func sanitize(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return strings.Join(strings.Fields(s), " ")
}
