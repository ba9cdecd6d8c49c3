// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package phone

import "strings"

// CountryCode is prefixed to normalized Brazilian numbers.
const CountryCode = "55"

// Normalize maps free-form phone input to the canonical storage key.
// Non-digit characters are stripped; 10 and 11 digit numbers get the
// country code prefix. Anything else is passed through stripped but
// otherwise unchanged - malformed input is not rejected here.
func Normalize(input string) string {
	cleaned := digitsOnly(input)
	if len(cleaned) == 10 || len(cleaned) == 11 {
		return CountryCode + cleaned
	}
	return cleaned
}

// Format renders a phone number for display: (DD) DDDDD-DDDD for 11
// digits, (DD) DDDD-DDDD for 10. Other lengths return the input as-is.
func Format(input string) string {
	cleaned := digitsOnly(input)
	switch len(cleaned) {
	case 11:
		return "(" + cleaned[:2] + ") " + cleaned[2:7] + "-" + cleaned[7:]
	case 10:
		return "(" + cleaned[:2] + ") " + cleaned[2:6] + "-" + cleaned[6:]
	}
	return input
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
