// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is a float64 that tolerates the loose numeric encodings used by the
// quote provider and by e-commerce platforms: plain JSON numbers, numeric
// strings such as "15.38", and null (which leaves the value untouched).
type Number float64

// Float64 returns n as a plain float64.
func (n Number) Float64() float64 {
	return float64(n)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (n *Number) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*n = Number(value)
		return nil
	case string:
		value = strings.TrimSpace(value)
		if value == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid numeric string %q: %w", value, err)
		}
		*n = Number(f)
		return nil
	default:
		return fmt.Errorf("cannot decode %s into a number", string(b))
	}
}

// FlexibleString is a string that also accepts a bare JSON number, keeping
// its literal text. Platform identifiers arrive either way.
type FlexibleString string

// UnmarshalJSON implements [json.Unmarshaler].
func (s *FlexibleString) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = FlexibleString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("cannot decode %s into a string: %w", raw, err)
	}
	*s = FlexibleString(num.String())
	return nil
}
