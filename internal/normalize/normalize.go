// Package normalize cleans raw field values before they are composed into
// searchable documents. Missing and malformed values are deliberately
// normalized to the empty string rather than rejected — the source data is
// known to be sparse.
package normalize

import (
	"fmt"
	"strings"
)

// Clean trims leading and trailing whitespace from a field value.
// Empty input stays empty. Clean never fails.
func Clean(value string) string {
	return strings.TrimSpace(value)
}

// CleanAny coerces an arbitrary field value to a cleaned string.
// Nil stands in for a missing field and yields "".
func CleanAny(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return Clean(s)
	}
	return Clean(fmt.Sprint(value))
}
