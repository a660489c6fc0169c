package srclog

/*
log.go

The log entry points. Every call captures its own file/line/function via
runtime.Caller, evaluates the gate and — only if allowed — renders the
prefix and the message into the shared scratch buffer and writes the
finished line to the sink. Gate check, formatting and the sink write form
one critical section, so concurrent calls are fully serialized and the
single scratch buffer bounds memory use.

A call on an uninitialized (or destroyed) context is a silent no-op; a
denied call produces no output and no error.
*/

import (
	"fmt"
	"runtime"
)

// callerInfo resolves the call site skip frames up the stack. Unresolvable
// frames yield the "???" placeholders of the runtime.
func callerInfo(skip int) (file string, line int, function string) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???", 0, "???"
	}
	function = "???"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = extractFileName(fn.Name()) // drop the package path, keep pkg.Func
	}
	return file, line, function
}

// logf is the common body of all formatted entry points. calldepth counts
// stack frames from runtime.Caller's point of view up to the user call
// site (3 for the public wrappers).
func (l *Logger) logf(calldepth int, source string, level LogLevel, format string, args ...any) {
	assertRequestedLevel(level)
	file, line, function := callerInfo(calldepth)
	l.guard.lock()
	defer l.guard.unlock()
	if !l.initialized {
		return
	}
	if !l.isLogAllowed(source, level) {
		return
	}
	l.scratch.Reset()
	l.composeLogPrefix(l.scratch, source, file, line, function, level)
	l.scratch.WriteString(" | ")
	fmt.Fprintf(l.scratch, format, args...)
	l.scratch.WriteByte('\n')
	// Write failures of the sink are deliberately indistinguishable from a
	// filtered call; the core does not detect them.
	l.scratch.WriteTo(l.sink)
}

// Logf writes a printf-style message for the source at the given level.
// The call site's file, line and function are captured automatically.
//
// Panics on a level outside (LVL_INVALID, LVL_NONE] — a broken call site.
func (l *Logger) Logf(source string, level LogLevel, format string, args ...any) {
	l.logf(3, source, level, format, args...)
}

// Tracef logs a printf-style message at TRACE level.
func (l *Logger) Tracef(source, format string, args ...any) {
	l.logf(3, source, LVL_TRACE, format, args...)
}

// Debugf logs a printf-style message at DEBUG level.
func (l *Logger) Debugf(source, format string, args ...any) {
	l.logf(3, source, LVL_DEBUG, format, args...)
}

// Infof logs a printf-style message at INFO level.
func (l *Logger) Infof(source, format string, args ...any) {
	l.logf(3, source, LVL_INFO, format, args...)
}

// Warningf logs a printf-style message at WARNING level.
func (l *Logger) Warningf(source, format string, args ...any) {
	l.logf(3, source, LVL_WARNING, format, args...)
}

// Errorf logs a printf-style message at ERROR level.
func (l *Logger) Errorf(source, format string, args ...any) {
	l.logf(3, source, LVL_ERROR, format, args...)
}

// LogRaw dumps a byte buffer for the source at RAW level: the usual prefix
// line first, then one hexdump row per 16-byte chunk. A nil buffer prints
// the literal text NULL instead of rows; an empty non-nil buffer prints the
// prefix and zero rows.
func (l *Logger) LogRaw(source string, buffer []byte) {
	file, line, function := callerInfo(2)
	l.guard.lock()
	defer l.guard.unlock()
	if !l.initialized {
		return
	}
	if !l.isLogAllowed(source, LVL_RAW) {
		return
	}
	l.scratch.Reset()
	l.composeLogPrefix(l.scratch, source, file, line, function, LVL_RAW)
	l.scratch.WriteByte('\n')
	if buffer == nil {
		l.scratch.WriteString("NULL\n")
	} else {
		for row := 0; row*HEXDUMP_ROW_BYTES < len(buffer); row++ {
			composeHexdumpLine(l.scratch, buffer, row)
			l.scratch.WriteByte('\n')
		}
	}
	l.scratch.WriteTo(l.sink)
}
