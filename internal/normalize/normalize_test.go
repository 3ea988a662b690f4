package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Paracetamol", "Paracetamol"},
		{"padded", "  x  ", "x"},
		{"tabs and newlines", "\t fever relief \n", "fever relief"},
		{"whitespace only", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Clean(tc.input))
		})
	}
}

func TestCleanAny(t *testing.T) {
	assert.Equal(t, "", CleanAny(nil))
	assert.Equal(t, "", CleanAny(""))
	assert.Equal(t, "x", CleanAny("  x  "))
	assert.Equal(t, "42", CleanAny(42))
	assert.Equal(t, "3.5", CleanAny(3.5))
}
