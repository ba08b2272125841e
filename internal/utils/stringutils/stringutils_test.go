package stringutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	assert.Equal(t, "42", ToString(int64(42)))
	assert.Equal(t, "7", ToString(uint8(7)))
	assert.Equal(t, "1.5", ToString(1.5))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "empty", in: "", max: 5, want: ""},
		{name: "short", in: "hola", max: 5, want: "hola"},
		{name: "exact", in: "hello", max: 5, want: "hello"},
		{name: "cut", in: "hello world", max: 6, want: "hello..."},
		{name: "runes", in: "Diseño UI/UX", max: 6, want: "Diseño..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.max))
		})
	}
}
