package dispatcher

import (
	"errors"
	"fmt"
)

// codeUnsupportedMethod is the EIP-1193 code for methods the provider does not
// serve.
const codeUnsupportedMethod = 4200

var (
	// ErrUnsupportedMethod matches every *UnsupportedMethodError.
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrInvalidParams is returned when a request's params cannot be decoded
	// into what its method expects.
	ErrInvalidParams = errors.New("invalid params")

	// ErrReceiptTimeout is returned by eth_getTransactionByHash once every
	// lookup attempt came back empty.
	ErrReceiptTimeout = errors.New("Transaction receipt not found after max attempts")
)

// UnsupportedMethodError reports a request the bridge declined, with the
// method name and the params exactly as received.
type UnsupportedMethodError struct {
	Reason string
	Method string
	Params string
	Cause  error
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("Error: %s, Type: %d, Method: %s, Params: %s", e.Reason, codeUnsupportedMethod, e.Method, e.Params)
}

func (e *UnsupportedMethodError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrUnsupportedMethod}
	}
	return []error{ErrUnsupportedMethod, e.Cause}
}
