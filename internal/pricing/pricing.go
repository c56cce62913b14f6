// Package pricing parses the flexible textual price representation stored on
// customer records.
//
// The encoding is sniffed: a structured (JSON) decode is attempted first and
// a comma-separated fallback second. The order matters for existing stored
// data ("5" decodes as JSON, "5,6" does not), so callers must not reorder
// the attempts.
package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse converts a raw price string into a list of amounts.
//
// Accepted inputs: a JSON array of numbers (numeric strings allowed, falsy
// elements dropped), a single JSON scalar (wrapped; empty list when
// zero-like), or a comma-separated list of numbers. Any failure on the
// structured path falls through to comma splitting, whose parse errors are
// returned to the caller.
func Parse(raw string) ([]float64, error) {
	if vals, err := parseStructured(raw); err == nil {
		return vals, nil
	}

	vals := []float64{}
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		f, err := strconv.ParseFloat(piece, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q: %w", piece, err)
		}
		vals = append(vals, f)
	}
	return vals, nil
}

func parseStructured(raw string) ([]float64, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, err
	}
	// Decode stops after the first value. "10,20" decodes as 10 with ",20"
	// left over; only a fully consumed input counts as structured.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after JSON value")
	}

	list, ok := decoded.([]any)
	if !ok {
		f, keep, err := elementValue(decoded)
		if err != nil {
			return nil, err
		}
		if !keep {
			return []float64{}, nil
		}
		return []float64{f}, nil
	}

	vals := make([]float64, 0, len(list))
	for _, el := range list {
		f, keep, err := elementValue(el)
		if err != nil {
			return nil, err
		}
		if keep {
			vals = append(vals, f)
		}
	}
	return vals, nil
}

// elementValue converts one decoded element. Falsy elements (null, false,
// 0, "") report keep=false; a quoted numeric string is kept even when it
// reads zero. Truthy non-numeric values are errors.
func elementValue(el any) (val float64, keep bool, err error) {
	switch v := el.(type) {
	case nil:
		return 0, false, nil
	case bool:
		if !v {
			return 0, false, nil
		}
		return 1, true, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false, err
		}
		if f == 0 {
			return 0, false, nil
		}
		return f, true, nil
	case string:
		if v == "" {
			return 0, false, nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false, err
		}
		return f, true, nil
	default:
		return 0, false, fmt.Errorf("unsupported price element of type %T", el)
	}
}

// Sum is a convenience for the reporting side: total of all parsed amounts.
func Sum(raw string) (float64, error) {
	vals, err := Parse(raw)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, v := range vals {
		total += v
	}
	return total, nil
}

// Normalize returns the storage form of a raw price string: valid JSON is
// stored verbatim, anything else is parsed and re-encoded as a JSON array.
func Normalize(raw string) (string, error) {
	if json.Valid([]byte(raw)) {
		return raw, nil
	}
	vals, err := Parse(raw)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(vals)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
