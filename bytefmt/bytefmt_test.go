package bytefmt_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"commons/bytefmt"
)

func TestByte(t *testing.T) {
	tests := []struct {
		in   byte
		want string
	}{
		{'a', "a"},
		{' ', " "},
		{'~', "~"},
		{'\n', `\n`},
		{'\r', `\r`},
		{'\t', `\t`},
		{0x00, `\x00`},
		{0x1f, `\x1f`},
		{0x7f, `\x7f`},
		{0xff, `\xff`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, bytefmt.Byte(tt.in), "byte %#x", tt.in)
	}
}

func TestBytes(t *testing.T) {
	data := []byte("ok\r\n\x00\xfe!")
	want := `ok\r\n\x00\xfe!`

	assert.Equal(t, want, bytefmt.Bytes(data))
	assert.Equal(t, want, bytefmt.Seq(slices.Values(data)))
	assert.Equal(t, "", bytefmt.Bytes(nil))
}
