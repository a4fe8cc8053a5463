package entity

import "strings"

// NormalizeGender converts free-form gender input to its stored canonical
// form: trimmed and uppercased ("male", "Male" and "MALE" all become "MALE").
func NormalizeGender(gender string) string {
	return strings.ToUpper(strings.TrimSpace(gender))
}
