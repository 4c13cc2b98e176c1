package jsonrpc

import (
	"errors"

	"github.com/gabapcia/walletbridge/internal/dispatcher"
	"github.com/gabapcia/walletbridge/internal/networkregistry"
	"github.com/gabapcia/walletbridge/internal/txtracker"
	"github.com/gabapcia/walletbridge/internal/walletctx"

	"github.com/ethereum/go-ethereum/rpc"
)

// EIP-1193 provider error codes and the JSON-RPC 2.0 ones the server uses.
const (
	CodeUserRejected      = 4001
	CodeUnauthorized      = 4100
	CodeUnsupportedMethod = 4200
	CodeUnrecognizedChain = 4902

	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Error is a JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// codeFor maps the bridge's errors to provider codes, most specific first.
// Node errors keep the code the node sent.
var codeFor = []struct {
	err  error
	code int
}{
	{txtracker.ErrUserRejected, CodeUserRejected},
	{walletctx.ErrAccountMismatch, CodeUnauthorized},
	{networkregistry.ErrUnknownNetwork, CodeUnrecognizedChain},
	{dispatcher.ErrUnsupportedMethod, CodeUnsupportedMethod},
	{dispatcher.ErrInvalidParams, CodeInvalidParams},
}

// NewError converts err into a JSON-RPC error object.
func NewError(err error) *Error {
	out := &Error{Code: CodeInternalError, Message: err.Error()}

	for _, c := range codeFor {
		if errors.Is(err, c.err) {
			out.Code = c.code
			return out
		}
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		out.Code = rpcErr.ErrorCode()
	}
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		out.Data = dataErr.ErrorData()
	}

	return out
}
