package results

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Cell is a single labeled value of a table row.
type Cell struct {
	Label string
	Value string
}

// Row is a table row keyed by header label. it keeps the order of the page's
// header so it is encoded and rendered in that order.
type Row []Cell

// Get returns the value under label.
func (r Row) Get(label string) (string, bool) {
	for _, c := range r {
		if c.Label == label {
			return c.Value, true
		}
	}
	return "", false
}

// Set replaces the value under label in place, or appends it when the label
// is new.
func (r *Row) Set(label, value string) {
	for i, c := range *r {
		if c.Label == label {
			(*r)[i].Value = value
			return
		}
	}
	*r = append(*r, Cell{Label: label, Value: value})
}

func (r Row) Labels() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.Label
	}
	return out
}

// MarshalJSON encodes the row as a json object with keys in label order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, err := json.Marshal(c.Label)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(c.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(label)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a json object of strings, keeping the key order.
func (r *Row) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*r = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("row must be a json object, got %v", tok)
	}

	row := Row{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("row key must be a string, got %v", tok)
		}
		var value string
		err = dec.Decode(&value)
		if err != nil {
			return fmt.Errorf("row value of %q: %w", label, err)
		}
		row.Set(label, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = row
	return nil
}
