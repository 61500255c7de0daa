package finbook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// DefaultHoldingsValuePath locates the current portfolio value in a broker
// holdings JSON export.
const DefaultHoldingsValuePath = "$.totalValue"

// HoldingsValue extracts the current portfolio value from a holdings JSON
// export using a jsonpath expression. Brokers disagree on where the total
// lives, so the path is caller-configurable; DefaultHoldingsValuePath covers
// the common shape.
func HoldingsValue(r io.Reader, path string) (decimal.Decimal, error) {
	if path == "" {
		path = DefaultHoldingsValuePath
	}

	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return decimal.Zero, fmt.Errorf("cannot parse holdings JSON: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cannot evaluate %q on holdings JSON: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("holdings value %q at %q is not a number: %w", v, path, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("holdings value at %q is %T, want a number", path, jval)
	}
}
