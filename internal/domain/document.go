package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// IDField is the key under which document-database backends expose a record identifier.
const IDField = "_id"

// ErrNotAnObject is returned when a payload is valid JSON but not an object.
var ErrNotAnObject = errors.New("payload must be a JSON object")

// Document is a stored record exactly as the caller supplied it.
type Document map[string]any

// Record pairs a stored document with its backend identifier.
type Record struct {
	ID       string
	Document Document
}

// DecodeDocument parses a JSON object, keeping numbers verbatim.
func DecodeDocument(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if dec.More() {
		return nil, errors.New("decode document: trailing data")
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrNotAnObject
	}
	return Document(obj), nil
}

// Clone returns a shallow copy.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// WithoutID returns a copy with the backend identifier key removed.
func (d Document) WithoutID() Document {
	out := d.Clone()
	delete(out, IDField)
	return out
}

// String returns the field as a string. Numbers are formatted; anything else is empty.
func (d Document) String(key string) string {
	switch v := d[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// Present reports whether the field holds a non-null, non-empty value.
func (d Document) Present(key string) bool {
	v, ok := d[key]
	if !ok || v == nil {
		return false
	}
	if s, isString := v.(string); isString {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// Amount reads a numeric field, accepting numeric strings. Unparseable values are zero.
func (d Document) Amount(key string) float64 {
	switch v := d[key].(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
