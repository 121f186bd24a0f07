package http

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// parseError is a client-input failure with the exact message the API
// contract promises for that field.
type parseError struct {
	message string
}

func (e parseError) Error() string {
	return e.message
}

// parseObject decodes the "request" query parameter into a JSON object.
// Numbers are kept as json.Number so integer and string forms can both be
// accepted by the field helpers.
func parseObject(raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, parseError{message: "Empty request"}
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, parseError{message: fmt.Sprintf("Request '%s' is not JSON object", raw)}
	}

	return obj, nil
}

// intField reads an integer field that may arrive as a JSON number or a
// numeric string. Anything else fails with the given message.
func intField(obj map[string]any, name, message string) (int, error) {
	var s string
	switch v := obj[name].(type) {
	case json.Number:
		s = v.String()
	case string:
		s = v
	default:
		return 0, parseError{message: message}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, parseError{message: message}
	}

	return n, nil
}

// stringField reads an optional string field; a missing or mistyped value
// comes back empty and is left to domain validation.
func stringField(obj map[string]any, name string) string {
	v, _ := obj[name].(string)
	return v
}

// stringsField reads a required array-of-strings field.
func stringsField(obj map[string]any, name, message string) ([]string, error) {
	raw, ok := obj[name].([]any)
	if !ok {
		return nil, parseError{message: message}
	}

	values := make([]string, 0, len(raw))
	for _, item := range raw {
		s, itemOk := item.(string)
		if !itemOk {
			return nil, parseError{message: message}
		}
		values = append(values, s)
	}

	return values, nil
}

// decimalField reads a required decimal field that may arrive as a JSON
// number or a numeric string.
func decimalField(obj map[string]any, name, message string) (decimal.Decimal, error) {
	var s string
	switch v := obj[name].(type) {
	case json.Number:
		s = v.String()
	case string:
		s = v
	default:
		return decimal.Decimal{}, parseError{message: message}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, parseError{message: message}
	}

	return d, nil
}
