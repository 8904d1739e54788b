package scenario

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidScenario  = errors.New("invalid scenario")
	ErrInvalidAction    = errors.New("step has no action")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrUnknownEntity    = errors.New("unknown entity")
	ErrDuplicateEntity  = errors.New("duplicate entity")
	// ErrPublishFailed means a combat event handler returned an error
	ErrPublishFailed = errors.New("combat event handler failed")
)

// ParameterError names the scenario field a value was rejected for. It
// matches ErrInvalidParameter.
type ParameterError struct {
	Field  string
	Reason string
}

func NewParameterError(field, reason string) *ParameterError {
	return &ParameterError{Field: field, Reason: reason}
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidParameter, e.Field, e.Reason)
}

func (e *ParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// StepError locates a failure among the scenario's steps
type StepError struct {
	Index  int
	Action ActionType
	Err    error
}

func NewStepError(step Step, index int, err error) *StepError {
	return &StepError{Index: index, Action: step.Action(), Err: err}
}

func (e *StepError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("step %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Action, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func unknownEntity(name string) error {
	return fmt.Errorf("%w: %s", ErrUnknownEntity, name)
}
