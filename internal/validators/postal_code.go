// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "strings"

// PostalCodeLength is the number of digits in a Brazilian postal code (CEP).
const PostalCodeLength = 8

// CleanPostalCode strips every non-digit character from raw, so that
// "01001-000" and "01.001-000" both become "01001000".
func CleanPostalCode(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPostalCode reports whether raw holds exactly eight decimal digits
// once separators and any other non-digit characters are ignored.
func IsValidPostalCode(raw string) bool {
	return len(CleanPostalCode(raw)) == PostalCodeLength
}
