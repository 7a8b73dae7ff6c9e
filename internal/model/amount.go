package model

import (
	"strconv"
	"strings"
)

// Amount is a monetary value. The hosted store serializes numeric columns as
// JSON numbers or quoted strings depending on the column definition, and old
// rows may carry nulls; anything that does not parse as a number decodes as 0
// instead of failing the whole read.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}

func (a Amount) Float64() float64 {
	return float64(a)
}
