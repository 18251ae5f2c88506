package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kilometers is a length that may be NaN when unknown. JSON has no NaN, so an
// unknown value is written as null and null reads back as NaN.
type Kilometers float64

// Known reports whether the value is a number.
func (k Kilometers) Known() bool { return !math.IsNaN(float64(k)) }

// Text renders the value for CSV: "nan" when unknown.
func (k Kilometers) Text() string {
	if !k.Known() {
		return "nan"
	}
	return strconv.FormatFloat(float64(k), 'f', -1, 64)
}

// ParseKilometers is the inverse of Text.
func ParseKilometers(s string) (Kilometers, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return Kilometers(math.NaN()), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Field: "diameter_km", Value: s, Err: err}
	}
	return Kilometers(v), nil
}

func (k Kilometers) MarshalJSON() ([]byte, error) {
	if !k.Known() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(k))
}

func (k *Kilometers) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*k = Kilometers(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*k = Kilometers(v)
	return nil
}
