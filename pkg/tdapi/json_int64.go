package tdapi

import (
	"bytes"
	"fmt"
	"strconv"
)

// JsonInt64 is a TL int64. TDJSON transmits it as a decimal string so that
// JavaScript-style consumers keep all 64 bits.
type JsonInt64 int64

func (v JsonInt64) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatInt(int64(v), 10))), nil
}

// UnmarshalJSON accepts both the quoted form and a bare JSON number.
func (v *JsonInt64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("json int64 %s: %w", data, err)
	}
	*v = JsonInt64(n)
	return nil
}
