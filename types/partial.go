package types

import "encoding/json"

// Partial is the result of a best-effort operation.
// When Err is set, Value is a fallback and not the real answer.
type Partial[T any] struct {
	Value T
	Err   error
}

func Complete[T any](v T) Partial[T] {
	return Partial[T]{Value: v}
}

func Degraded[T any](fallback T, err error) Partial[T] {
	return Partial[T]{Value: fallback, Err: err}
}

func (p Partial[T]) Degraded() bool {
	return p.Err != nil
}

func (p Partial[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value    T    `json:"value"`
		Degraded bool `json:"degraded"`
	}{
		Value:    p.Value,
		Degraded: p.Degraded(),
	})
}
