package jsonrpc

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gabapcia/walletbridge/internal/bridge"
	"github.com/gabapcia/walletbridge/internal/dispatcher"
	"github.com/gabapcia/walletbridge/internal/networkregistry"
	"github.com/gabapcia/walletbridge/internal/subscription"
	"github.com/gabapcia/walletbridge/internal/txtracker"
	"github.com/gabapcia/walletbridge/internal/walletctx"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	feed     event.Feed
	dispatch func(method string, params json.RawMessage) (any, error)
}

func (p *fakeProvider) Dispatch(_ context.Context, method string, params json.RawMessage) (any, error) {
	return p.dispatch(method, params)
}

func (p *fakeProvider) Subscribe(ch chan<- bridge.Event) event.Subscription {
	return p.feed.Subscribe(ch)
}

func post(t *testing.T, router http.Handler, body string) map[string]any {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestRouter_RPC(t *testing.T) {
	t.Run("returns the result with the request id", func(t *testing.T) {
		p := &fakeProvider{dispatch: func(method string, params json.RawMessage) (any, error) {
			assert.Equal(t, "eth_getBalance", method)
			assert.JSONEq(t, `["0xabc","latest"]`, string(params))
			return "0x10", nil
		}}

		out := post(t, NewRouter(p), `{"jsonrpc":"2.0","id":7,"method":"eth_getBalance","params":["0xabc","latest"]}`)

		assert.Equal(t, "2.0", out["jsonrpc"])
		assert.Equal(t, float64(7), out["id"])
		assert.Equal(t, "0x10", out["result"])
		assert.NotContains(t, out, "error")
	})

	t.Run("null results are kept", func(t *testing.T) {
		p := &fakeProvider{dispatch: func(string, json.RawMessage) (any, error) { return nil, nil }}

		out := post(t, NewRouter(p), `{"jsonrpc":"2.0","id":"a","method":"eth_getTransactionReceipt","params":["0x1"]}`)

		assert.Contains(t, out, "result")
		assert.Nil(t, out["result"])
	})

	t.Run("maps errors to provider codes", func(t *testing.T) {
		tests := []struct {
			err  error
			code int
		}{
			{txtracker.ErrUserRejected, CodeUserRejected},
			{fmt.Errorf("sign: %w", walletctx.ErrAccountMismatch), CodeUnauthorized},
			{&dispatcher.UnsupportedMethodError{Method: "wallet_switchEthereumChain", Params: "[]", Cause: networkregistry.ErrUnknownNetwork}, CodeUnrecognizedChain},
			{&dispatcher.UnsupportedMethodError{Method: "eth_newFilter", Params: "[]"}, CodeUnsupportedMethod},
			{dispatcher.ErrInvalidParams, CodeInvalidParams},
			{dispatcher.ErrReceiptTimeout, CodeInternalError},
			{txtracker.ErrSubmissionTimeout, CodeInternalError},
			{walletctx.ErrInvalidWallet, CodeInternalError},
			{errors.New("boom"), CodeInternalError},
		}

		for _, tt := range tests {
			p := &fakeProvider{dispatch: func(string, json.RawMessage) (any, error) { return nil, tt.err }}

			out := post(t, NewRouter(p), `{"jsonrpc":"2.0","id":1,"method":"x"}`)

			require.Contains(t, out, "error", tt.err.Error())
			assert.NotContains(t, out, "result")
			rpcErr := out["error"].(map[string]any)
			assert.Equal(t, float64(tt.code), rpcErr["code"], tt.err.Error())
			assert.Equal(t, tt.err.Error(), rpcErr["message"])
		}
	})

	t.Run("malformed requests", func(t *testing.T) {
		p := &fakeProvider{}
		router := NewRouter(p)

		out := post(t, router, `{not json`)
		assert.Equal(t, float64(CodeParseError), out["error"].(map[string]any)["code"])

		out = post(t, router, `{"jsonrpc":"2.0","id":1}`)
		assert.Equal(t, float64(CodeInvalidRequest), out["error"].(map[string]any)["code"])
	})

	t.Run("batches", func(t *testing.T) {
		p := &fakeProvider{dispatch: func(method string, _ json.RawMessage) (any, error) {
			return method, nil
		}}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`[
			{"jsonrpc":"2.0","id":1,"method":"eth_chainId"},
			{"jsonrpc":"2.0","id":2,"method":"eth_blockNumber"}
		]`))
		NewRouter(p).ServeHTTP(rec, req)

		var out []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.Len(t, out, 2)
		assert.Equal(t, "eth_chainId", out[0]["result"])
		assert.Equal(t, "eth_blockNumber", out[1]["result"])
	})
}

func TestRouter_Events(t *testing.T) {
	p := &fakeProvider{}
	srv := httptest.NewServer(NewRouter(p))
	defer srv.Close()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	// The handler subscribes asynchronously; keep sending until it is there.
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if p.feed.Send(bridge.Event{
					Name: bridge.EventNewBlockHeader,
					Data: subscription.Event{Subscription: "0x01", Header: &types.Header{Number: big.NewInt(5), Difficulty: big.NewInt(0)}},
				}) > 0 {
					return
				}
			}
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	reader := bufio.NewReader(resp.Body)
	var lines []string
	for len(lines) < 2 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	assert.Equal(t, "event:newBlockHeader", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "data:"))

	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(lines[1], "data:")), &data))
	assert.Equal(t, "0x01", data["subscription"])
	assert.Equal(t, "0x5", data["result"].(map[string]any)["number"])
}

func TestRenderEvent(t *testing.T) {
	ev := renderEvent(bridge.Event{
		Name: bridge.EventTransaction,
		Data: txtracker.PendingTransaction{
			ID:      "id",
			ChainID: 17000,
			State:   txtracker.StateFailed,
			Nonce:   2,
			Err:     txtracker.ErrSubmissionTimeout,
		},
	})

	raw, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"id","chainId":"0x4268","state":"failed","nonce":"0x2","confirmations":0,"error":"transaction timeout exceeded"}`, string(raw))

	assert.Equal(t, "0x4268", renderEvent(bridge.Event{Name: bridge.EventChainChanged, Data: "0x4268"}))
}
