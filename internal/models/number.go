package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a JSON numeric value that tolerates the loose typing of the
// stored documents: it accepts a number, a numeric string, or garbage
// (which coerces to 0), and marshals integral values without a decimal
// point so a limit of "100" round-trips as 100, not 100.0.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("0"), nil
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return []byte(strconv.FormatInt(int64(f), 10)), nil
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

// UnmarshalJSON never fails: anything that does not parse as a number
// becomes 0. Documents with hand-edited or historically corrupt limit
// values still load.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) > 0 && s[0] == '"' {
		var quoted string
		if err := json.Unmarshal(data, &quoted); err != nil {
			*n = 0
			return nil
		}
		s = strings.TrimSpace(quoted)
	}
	*n = parseNumber(s)
	return nil
}

// ParseNumber coerces a raw string to a Number under the same rule as
// UnmarshalJSON: missing/empty/unparseable values become 0.
func ParseNumber(raw string) Number {
	return parseNumber(strings.TrimSpace(raw))
}

func parseNumber(s string) Number {
	if s == "" || s == "null" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Number(f)
}
