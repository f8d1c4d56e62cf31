package rpc

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MixinNetwork/fraction/common"
	"github.com/MixinNetwork/fraction/config"
)

var errUnknownMethod = errors.New("unknown method")

type fractionView struct {
	Value    string `json:"value"`
	String   string `json:"string"`
	Decimal  string `json:"decimal"`
	Negative bool   `json:"negative"`
}

func (impl *R) view(f common.Fraction) fractionView {
	places := impl.custom.Format.DecimalPlaces
	return fractionView{
		Value:    f.RatString(),
		String:   f.String(),
		Decimal:  f.Decimal(places).StringFixed(places),
		Negative: f.IsNegative(),
	}
}

func (impl *R) dispatch(method string, params []interface{}) (interface{}, error) {
	switch method {
	case "parse", "abs":
		x, err := impl.unary(method, params)
		if err != nil {
			return nil, err
		}
		if method == "abs" {
			x = x.Abs()
		}
		return impl.view(x), nil
	case "fromdecimal":
		if len(params) != 1 {
			return nil, fmt.Errorf("invalid params count %d for %s", len(params), method)
		}
		s, ok := params[0].(string)
		if !ok {
			return nil, fmt.Errorf("invalid decimal %v", params[0])
		}
		x, err := common.ParseDecimal(s)
		if err != nil {
			return nil, err
		}
		return impl.view(x), nil
	case "decimal":
		if len(params) != 2 {
			return nil, fmt.Errorf("invalid params count %d for %s", len(params), method)
		}
		x, err := impl.readFraction(params[0])
		if err != nil {
			return nil, err
		}
		places, err := readPlaces(params[1])
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"decimal": x.Decimal(places).StringFixed(places)}, nil
	case "add", "sub", "mul", "div", "cmp":
		x, y, err := impl.binary(method, params)
		if err != nil {
			return nil, err
		}
		return impl.arithmetic(method, x, y)
	}
	return nil, fmt.Errorf("%w %s", errUnknownMethod, method)
}

func (impl *R) arithmetic(method string, x, y common.Fraction) (interface{}, error) {
	switch method {
	case "add":
		return impl.view(x.Add(y)), nil
	case "sub":
		return impl.view(x.Sub(y)), nil
	case "mul":
		return impl.view(x.Mul(y)), nil
	case "div":
		q, err := x.Div(y)
		if err != nil {
			return nil, err
		}
		return impl.view(q), nil
	case "cmp":
		return map[string]interface{}{"cmp": x.Cmp(y)}, nil
	}
	return nil, fmt.Errorf("%w %s", errUnknownMethod, method)
}

func (impl *R) unary(method string, params []interface{}) (common.Fraction, error) {
	if len(params) != 1 {
		return common.Fraction{}, fmt.Errorf("invalid params count %d for %s", len(params), method)
	}
	return impl.readFraction(params[0])
}

func (impl *R) binary(method string, params []interface{}) (common.Fraction, common.Fraction, error) {
	if len(params) != 2 {
		return common.Fraction{}, common.Fraction{}, fmt.Errorf("invalid params count %d for %s", len(params), method)
	}
	x, err := impl.readFraction(params[0])
	if err != nil {
		return common.Fraction{}, common.Fraction{}, err
	}
	y, err := impl.readFraction(params[1])
	if err != nil {
		return common.Fraction{}, common.Fraction{}, err
	}
	return x, y, nil
}

// readFraction accepts "n/d" text or a plain JSON number, numbers are read
// as exact decimals.
func (impl *R) readFraction(p interface{}) (common.Fraction, error) {
	switch v := p.(type) {
	case string:
		return impl.parseCached(v)
	case json.Number:
		return common.ParseDecimal(v.String())
	}
	return common.Fraction{}, fmt.Errorf("invalid fraction %v", p)
}

// parseCached keeps the msgpack form of every successfully parsed text.
func (impl *R) parseCached(s string) (common.Fraction, error) {
	var f common.Fraction
	if val := impl.cache.Get(nil, []byte(s)); len(val) > 0 {
		err := f.UnmarshalMsgpack(val)
		if err == nil {
			return f, nil
		}
	}
	f, err := common.Parse(s)
	if err != nil {
		return f, err
	}
	val, err := f.MarshalMsgpack()
	if err != nil {
		return f, err
	}
	impl.cache.Set([]byte(s), val)
	return f, nil
}

func readPlaces(p interface{}) (int32, error) {
	n, ok := p.(json.Number)
	if !ok {
		return 0, fmt.Errorf("invalid places %v", p)
	}
	places, err := n.Int64()
	if err != nil || places < 0 || places > config.MaximumDecimalPlaces {
		return 0, fmt.Errorf("invalid places %v", p)
	}
	return int32(places), nil
}
