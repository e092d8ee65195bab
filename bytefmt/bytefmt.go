// Package bytefmt renders raw bytes as printable text for logs and error
// messages.
package bytefmt

import (
	"fmt"
	"iter"
	"strings"

	"github.com/go-softwarelab/common/pkg/seq"

	"commons/seqs"
)

// Byte renders b as itself when it is printable ASCII, as \n, \r or \t for
// those control characters, and as \xNN otherwise.
func Byte(b byte) string {
	switch {
	case b == '\n':
		return `\n`
	case b == '\r':
		return `\r`
	case b == '\t':
		return `\t`
	case b < 32 || b >= 127:
		return fmt.Sprintf(`\x%02x`, b)
	default:
		return string(rune(b))
	}
}

// Bytes renders every byte of data with Byte.
func Bytes(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteString(Byte(b))
	}
	return sb.String()
}

// Seq renders a byte sequence with Byte.
func Seq(bytes iter.Seq[byte]) string {
	return strings.Join(seq.Collect(seqs.Map(bytes, Byte)), "")
}
