package srclog

/*
format.go

Line rendering: the fixed-structure prefix (severity tag, source, file,
line, optional function name, optional timestamp) and the 16-byte
hexdump rows used for raw buffer logging. All fields are rendered into a
growable buffer; overlong fields are truncated to their fixed widths,
short ones are space-padded.
*/

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Format strings are assembled from the width constants once, the same way
// for every line (stringized widths instead of magic inline numbers).
var (
	// "[%-1.1s][%-16.16s][%-20.20s:%5d]"
	prefixFormat = fmt.Sprintf("[%%-1.1s][%%-%[1]d.%[1]ds][%%-%[2]d.%[2]ds:%%%[3]dd]",
		SRC_DISPLAY_MAX_SIZE, FILE_NAME_MAX_SIZE, LINE_NUMBER_WIDTH)
	// " in %-20.20s()"
	functionFormat = fmt.Sprintf(" in %%-%[1]d.%[1]ds()", FUNCTION_NAME_MAX_SIZE)
	// "%.8X  "
	hexdumpAddrFormat = fmt.Sprintf("%%.%dX  ", RAW_ADDR_FIELD_WIDTH)
)

// extractFileName reduces a path to its final component (after the last
// '/' or '\') so the prefix never carries full build paths.
func extractFileName(filePath string) string {
	if at := strings.LastIndexByte(filePath, '/'); at >= 0 {
		return filePath[at+1:]
	}
	if at := strings.LastIndexByte(filePath, '\\'); at >= 0 {
		return filePath[at+1:]
	}
	return filePath
}

// appendTimestamp renders the local time as "YYYY.MM.DD-HH:MM:SS:mmm"
// followed by the field separator. Milliseconds are left-justified in a
// 4-wide field.
func appendTimestamp(buf *bytes.Buffer, now time.Time) {
	fmt.Fprintf(buf, "%.4d.%.2d.%.2d-%.2d:%.2d:%.2d:%-4.3d:",
		now.Year(),
		int(now.Month()),
		now.Day(),
		now.Hour(),
		now.Minute(),
		now.Second(),
		now.Nanosecond()/int(time.Millisecond))
}

// composeLogPrefix appends the fixed-structure prefix to buf:
//
//	[<1-char tag>][<source>][<file>:<line>] in <function>()
//
// with the optional timestamp in front. Source, file and function are
// left-justified and silently truncated to their fixed widths; the file is
// reduced to its basename first.
func (l *Logger) composeLogPrefix(buf *bytes.Buffer, source, file string, line int, function string, level LogLevel) {
	if l.withTime {
		appendTimestamp(buf, time.Now())
	}
	fmt.Fprintf(buf, prefixFormat, level.String(), source, extractFileName(file), line)
	if l.withFunc {
		fmt.Fprintf(buf, functionFormat, function)
	}
}

// composeHexdumpLine appends one 16-byte row of the buffer dump: the byte
// offset of the row as RAW_ADDR_FIELD_WIDTH uppercase hex digits, two
// spaces, up to 16 " %02X" groups (short tail rows are blank-padded to keep
// the columns aligned), a " | " separator and the printable-ASCII rendering
// of the same bytes. The text part is not padded since it ends the line.
func composeHexdumpLine(buf *bytes.Buffer, data []byte, row int) {
	fmt.Fprintf(buf, hexdumpAddrFormat, row*HEXDUMP_ROW_BYTES)
	chunk := data[row*HEXDUMP_ROW_BYTES:]
	if len(chunk) > HEXDUMP_ROW_BYTES {
		chunk = chunk[:HEXDUMP_ROW_BYTES]
	}
	for _, b := range chunk {
		fmt.Fprintf(buf, " %.2X", b)
	}
	for i := len(chunk); i < HEXDUMP_ROW_BYTES; i++ {
		buf.WriteString("   ")
	}
	buf.WriteString(" | ")
	for _, b := range chunk {
		if b >= 0x20 && b < 0x7F {
			buf.WriteByte(b)
		} else {
			buf.WriteByte('.')
		}
	}
}
