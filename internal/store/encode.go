package store

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"beup-results/internal/results"
)

// ParseGrade converts the raw grade text into a number, anything that is
// absent or not numeric becomes nil.
func ParseGrade(raw *string) *float64 {
	if raw == nil {
		return nil
	}
	text := strings.TrimSpace(*raw)
	if text == "" {
		return nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return &value
}

// encodeRows writes the rows as a json array of objects, every object keeps
// the column order of the table it was read from.
func encodeRows(rows []results.Row) (string, error) {
	if rows == nil {
		rows = []results.Row{}
	}
	out, err := json.Marshal(rows)
	return string(out), err
}

func encodeMapping(mapping results.Row) (string, error) {
	out, err := json.Marshal(mapping)
	return string(out), err
}

func encodeNotes(notes []string) (string, error) {
	if notes == nil {
		notes = []string{}
	}
	out, err := json.Marshal(notes)
	return string(out), err
}

// decodeBlob unmarshals a json column into out, a NULL column leaves out untouched.
func decodeBlob(blob *string, out any) error {
	if blob == nil || *blob == "" {
		return nil
	}
	return json.Unmarshal([]byte(*blob), out)
}
