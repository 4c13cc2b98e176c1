// Package chflow holds small generic helpers for channel operations that must
// give up when a context is done.
package chflow

import "context"

// Receive blocks until a value arrives on ch, ch is closed or ctx is done.
// ok is false in the last two cases and value is then the zero value.
func Receive[T any](ctx context.Context, ch <-chan T) (value T, ok bool) {
	select {
	case <-ctx.Done():
		return value, false
	case value, ok = <-ch:
		return value, ok
	}
}

// Send blocks until data is delivered on ch or ctx is done, reporting whether
// the value was delivered.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// TrySend delivers data only when ch can accept it right away.
func TrySend[T any](ch chan<- T, data T) bool {
	select {
	case ch <- data:
		return true
	default:
		return false
	}
}
