// Package jsonrpc exposes the bridge over HTTP: a JSON-RPC 2.0 endpoint for
// requests and a server-sent events stream for provider events.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gabapcia/walletbridge/internal/bridge"
	"github.com/gabapcia/walletbridge/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/event"
	"github.com/gin-gonic/gin"
)

const (
	version     = "2.0"
	eventBuffer = 32
)

// Provider is the part of the bridge the server needs.
type Provider interface {
	Dispatch(ctx context.Context, method string, params json.RawMessage) (any, error)
	Subscribe(ch chan<- bridge.Event) event.Subscription
}

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result"`
	Error   *Error          `json:"error,omitempty"`
}

// MarshalJSON drops result on errors, as JSON-RPC requires exactly one of the
// two.
func (r response) MarshalJSON() ([]byte, error) {
	if r.Error != nil {
		return json.Marshal(struct {
			JSONRPC string          `json:"jsonrpc"`
			ID      json.RawMessage `json:"id"`
			Error   *Error          `json:"error"`
		}{r.JSONRPC, r.id(), r.Error})
	}

	return json.Marshal(struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id"`
		Result  any             `json:"result"`
	}{r.JSONRPC, r.id(), r.Result})
}

func (r response) id() json.RawMessage {
	if len(r.ID) == 0 {
		return json.RawMessage("null")
	}
	return r.ID
}

type handler struct {
	provider Provider
}

// NewRouter returns a gin engine serving POST / and GET /events.
func NewRouter(provider Provider) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	h := &handler{provider: provider}
	r.POST("/", h.rpc)
	r.GET("/events", h.events)

	return r
}

// rpc serves a single request or a batch.
func (h *handler) rpc(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, response{JSONRPC: version, Error: &Error{Code: CodeParseError, Message: err.Error()}})
		return
	}

	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '[' {
		var batch []json.RawMessage
		if err := json.Unmarshal(body, &batch); err != nil {
			c.JSON(http.StatusOK, response{JSONRPC: version, Error: &Error{Code: CodeParseError, Message: err.Error()}})
			return
		}

		out := make([]response, len(batch))
		for i, raw := range batch {
			out[i] = h.serve(c.Request.Context(), raw)
		}
		c.JSON(http.StatusOK, out)
		return
	}

	c.JSON(http.StatusOK, h.serve(c.Request.Context(), body))
}

func (h *handler) serve(ctx context.Context, raw json.RawMessage) response {
	var req request
	if err := json.Unmarshal(raw, &req); err != nil {
		return response{JSONRPC: version, Error: &Error{Code: CodeParseError, Message: err.Error()}}
	}
	if req.Method == "" {
		return response{JSONRPC: version, ID: req.ID, Error: &Error{Code: CodeInvalidRequest, Message: "missing method"}}
	}

	result, err := h.provider.Dispatch(ctx, req.Method, req.Params)
	if err != nil {
		return response{JSONRPC: version, ID: req.ID, Error: NewError(err)}
	}
	return response{JSONRPC: version, ID: req.ID, Result: result}
}

// events streams provider events until the client goes away.
func (h *handler) events(c *gin.Context) {
	ch := make(chan bridge.Event, eventBuffer)
	sub := h.provider.Subscribe(ch)
	defer sub.Unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case err := <-sub.Err():
			if err != nil {
				logger.Warn(c.Request.Context(), "event subscription failed", "error", err)
			}
			return false
		case ev := <-ch:
			c.SSEvent(ev.Name, renderEvent(ev))
			return true
		}
	})
}
