package dispatcher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/gabapcia/walletbridge/internal/txtracker"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// call is one decoded request.
type call struct {
	method Method
	name   string
	raw    json.RawMessage
	params []json.RawMessage
}

func newCall(name string, raw json.RawMessage) (*call, error) {
	c := &call{
		method: ParseMethod(name),
		name:   name,
		raw:    raw,
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		c.raw = json.RawMessage("[]")
		return c, nil
	}

	if err := json.Unmarshal(trimmed, &c.params); err != nil {
		return c, fmt.Errorf("%w: %s expects a params array: %v", ErrInvalidParams, name, err)
	}
	return c, nil
}

// arg decodes the required positional param i into v.
func (c *call) arg(i int, v any) error {
	ok, err := c.optional(i, v)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s is missing param %d", ErrInvalidParams, c.name, i)
	}
	return nil
}

// optional decodes param i into v when present and not null.
func (c *call) optional(i int, v any) (bool, error) {
	if i >= len(c.params) || bytes.Equal(bytes.TrimSpace(c.params[i]), []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(c.params[i], v); err != nil {
		return false, fmt.Errorf("%w: %s param %d: %v", ErrInvalidParams, c.name, i, err)
	}
	return true, nil
}

// unsupported builds the error returned for declined requests.
func (c *call) unsupported(reason string, cause error) error {
	params, err := json.Marshal(c.params)
	if err != nil || c.params == nil {
		params = []byte("[]")
	}

	return &UnsupportedMethodError{
		Reason: reason,
		Method: c.name,
		Params: string(params),
		Cause:  cause,
	}
}

// blockArg converts a block tag to the ethclient convention: nil for latest,
// negative numbers for the other named tags.
func blockArg(tag *rpc.BlockNumber) *big.Int {
	if tag == nil || *tag == rpc.LatestBlockNumber {
		return nil
	}
	return big.NewInt(tag.Int64())
}

// blockTag decodes the optional block tag at param i.
func (c *call) blockTag(i int) (*rpc.BlockNumber, error) {
	var tag rpc.BlockNumber
	ok, err := c.optional(i, &tag)
	if err != nil || !ok {
		return nil, err
	}
	return &tag, nil
}

// txParams is the transaction object of eth_call, eth_estimateGas and
// eth_sendTransaction.
type txParams struct {
	From     *common.Address `json:"from"`
	To       *common.Address `json:"to"`
	Gas      *hexutil.Uint64 `json:"gas"`
	GasPrice *hexutil.Big    `json:"gasPrice"`
	Value    *hexutil.Big    `json:"value"`
	Data     *hexutil.Bytes  `json:"data"`
	Input    *hexutil.Bytes  `json:"input"`
}

func (p txParams) data() []byte {
	switch {
	case p.Input != nil:
		return *p.Input
	case p.Data != nil:
		return *p.Data
	default:
		return nil
	}
}

func (p txParams) callMsg(defaultFrom common.Address) ethereum.CallMsg {
	msg := ethereum.CallMsg{
		From:     defaultFrom,
		To:       p.To,
		GasPrice: (*big.Int)(p.GasPrice),
		Value:    (*big.Int)(p.Value),
		Data:     p.data(),
	}
	if p.From != nil {
		msg.From = *p.From
	}
	if p.Gas != nil {
		msg.Gas = uint64(*p.Gas)
	}
	return msg
}

func (p txParams) request() txtracker.Request {
	req := txtracker.Request{
		From:     p.From,
		To:       p.To,
		GasPrice: (*big.Int)(p.GasPrice),
		Value:    (*big.Int)(p.Value),
		Data:     p.data(),
	}
	if p.Gas != nil {
		gas := uint64(*p.Gas)
		req.Gas = &gas
	}
	return req
}
