package bufutils

import (
	"fmt"
	"strings"
)

const hexdumpWidth = 16

// Hexdump renders p in the usual offset/hex/ASCII layout, 16 bytes per row.
// It is meant for debug output and test failure messages, not for machine
// consumption.
func Hexdump(p []byte) string {
	if len(p) == 0 {
		return "<empty>"
	}

	var b strings.Builder
	for offset := 0; offset < len(p); offset += hexdumpWidth {
		row := p[offset:]
		if len(row) > hexdumpWidth {
			row = row[:hexdumpWidth]
		}

		fmt.Fprintf(&b, "%08x  ", offset)
		for i := 0; i < hexdumpWidth; i++ {
			if i == hexdumpWidth/2 {
				b.WriteByte(' ')
			}
			if i < len(row) {
				fmt.Fprintf(&b, "%02x ", row[i])
			} else {
				b.WriteString("   ")
			}
		}

		b.WriteString(" |")
		for _, c := range row {
			if c < 0x20 || c > 0x7e {
				c = '.'
			}
			b.WriteByte(c)
		}
		b.WriteString("|\n")
	}

	return b.String()
}
