package jsonrpc

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closableProvider struct {
	fakeProvider
	closed atomic.Int32
}

func (p *closableProvider) Close() {
	p.closed.Add(1)
}

func TestServer(t *testing.T) {
	t.Run("serves the provider until closed", func(t *testing.T) {
		p := &closableProvider{fakeProvider: fakeProvider{dispatch: func(method string, _ json.RawMessage) (any, error) {
			return method, nil
		}}}

		srv := NewServer("127.0.0.1:0", func(context.Context) (ClosableProvider, error) {
			return p, nil
		})
		require.NoError(t, srv.Start(t.Context()))

		res, err := http.Post("http://"+srv.Addr(), "application/json",
			strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"eth_chainId"}`))
		require.NoError(t, err)
		defer res.Body.Close()

		var out map[string]any
		require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
		assert.Equal(t, "eth_chainId", out["result"])

		srv.Close()
		assert.Equal(t, int32(1), p.closed.Load())

		_, err = http.Post("http://"+srv.Addr(), "application/json", strings.NewReader(`{}`))
		assert.Error(t, err)
	})

	t.Run("surfaces open errors", func(t *testing.T) {
		srv := NewServer("127.0.0.1:0", func(context.Context) (ClosableProvider, error) {
			return nil, assert.AnError
		})

		assert.ErrorIs(t, srv.Start(t.Context()), assert.AnError)
		srv.Close()
	})

	t.Run("closes the provider when the address is taken", func(t *testing.T) {
		first := NewServer("127.0.0.1:0", func(context.Context) (ClosableProvider, error) {
			return &closableProvider{}, nil
		})
		require.NoError(t, first.Start(t.Context()))
		defer first.Close()

		p := &closableProvider{}
		second := NewServer(first.Addr(), func(context.Context) (ClosableProvider, error) {
			return p, nil
		})

		assert.Error(t, second.Start(t.Context()))
		assert.Equal(t, int32(1), p.closed.Load())
	})
}
