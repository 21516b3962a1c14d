package agent

import (
	"errors"
	"fmt"
)

// ErrNoClient is recorded on outcomes produced without a generative client
var ErrNoClient = errors.New("no LLM client configured")

// IdentityError represents an unusable identity response from the LLM
type IdentityError struct {
	Message string
	Cause   error
}

func (e *IdentityError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("identity generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("identity generation failed: %s", e.Message)
}

func (e *IdentityError) Unwrap() error {
	return e.Cause
}

// OptimizationError represents a failed prompt optimization call
type OptimizationError struct {
	Message string
	Cause   error
}

func (e *OptimizationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("prompt optimization failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("prompt optimization failed: %s", e.Message)
}

func (e *OptimizationError) Unwrap() error {
	return e.Cause
}
