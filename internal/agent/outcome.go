package agent

// Outcome is the result of a step backed by the generative service.
// Fallback is set when Value came from the deterministic path, and Err then
// carries the reason the service result was not used.
type Outcome[T any] struct {
	Value    T
	Fallback bool
	Err      error
}

// Ok wraps a value produced by the generative service
func Ok[T any](value T) Outcome[T] {
	return Outcome[T]{Value: value}
}

// FallbackTo wraps a deterministic value used because of err
func FallbackTo[T any](value T, err error) Outcome[T] {
	return Outcome[T]{Value: value, Fallback: true, Err: err}
}
