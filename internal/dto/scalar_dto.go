package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NumericID is a numeric identifier that callers may send either as a JSON
// number or as a string (ID-typed arguments arrive stringly from most
// clients).
type NumericID int64

func (n *NumericID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = str
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Tolerate float renderings like 12.0 from loosely typed clients.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("invalid numeric id %q", s)
		}
		v = int64(f)
	}
	*n = NumericID(v)
	return nil
}

func (n NumericID) Int64() int64 {
	return int64(n)
}
