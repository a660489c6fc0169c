package srclog

/*********************************************************************************
io.Writer interface implementation

Writer() returns a handle bound to one (source, level) pair so the logger
can be used with fmt.Fprintf and other io.Writer-based helpers:

  fmt.Fprintf(l.Writer("NET", srclog.LVL_WARNING), "disk low: %d%%", percent)

Semantics:
 - Write(p) logs the bytes verbatim (no format expansion) and reports
   len(p) on success.
 - A gated-off or uninitialized context still reports len(p): filtering is
   silent and is not a write error.
 - The reported file/line point at the immediate caller of Write, which for
   the fmt helpers is the fmt package itself.
*********************************************************************************/

import "io"

// levelWriter adapts one (source, level) pair to io.Writer.
type levelWriter struct {
	logger *Logger
	source string
	level  LogLevel
}

// Writer returns an io.Writer that logs everything written to it for the
// given source at the given level.
//
// Panics on a level outside (LVL_INVALID, LVL_NONE] — a broken call site.
func (l *Logger) Writer(source string, level LogLevel) io.Writer {
	assertRequestedLevel(level)
	return &levelWriter{logger: l, source: source, level: level}
}

// Write implements io.Writer. The payload is logged as-is; "%" bytes have
// no special meaning here.
func (w *levelWriter) Write(p []byte) (n int, err error) {
	w.logger.logf(3, w.source, w.level, "%s", p)
	return len(p), nil
}
