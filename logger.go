// A lightweight, source-scoped levelled logging package for Go. Log sources
// are registered by name with their own minimal severity; a shared gate
// decides for every call whether formatting and writing should happen at all.
package srclog

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"
	"sync"
)

const (
	// Error messages used across logger operations (used for testing).
	_ERROR_MESSAGE_ALREADY_INITIALIZED = "logging context is already initialized"
	_ERROR_MESSAGE_NOT_INITIALIZED     = "logging context is not initialized"
	_ERROR_MESSAGE_INVALID_LEVEL       = "log level is out of the valid range"
	_ERROR_MESSAGE_SOURCE_TOO_LONG     = "source name exceeds the stored maximum"
	_PANIC_MESSAGE_BAD_REQUEST_LEVEL   = "requested log level is out of the valid range"
)

/*
The synchronization discipline is a single binary choice made once at Init:
either every operation on the registry/global level runs under one shared
exclusive lock (coarse-grained, format + gate check + write serialized
end-to-end), or no synchronization is performed at all for processes that
declared themselves single-threaded. There is no per-entry locking and no
lock-free path.
*/

// guard abstracts the synchronization strategy protecting the registry,
// the global level and the scratch buffer.
type guard interface {
	lock()
	unlock()
}

// nopGuard performs no synchronization. Zero overhead, undefined behavior
// under concurrent use (caller's responsibility).
type nopGuard struct{}

func (nopGuard) lock()   {}
func (nopGuard) unlock() {}

// mutexGuard serializes all operations behind one exclusive mutex.
type mutexGuard struct{ mtx sync.Mutex }

func (g *mutexGuard) lock()   { g.mtx.Lock() }
func (g *mutexGuard) unlock() { g.mtx.Unlock() }

// NewWithParams constructs an uninitialized logging context with explicit
// settings. A nil sink is replaced with io.Discard. The two prefix feature
// toggles (function name, timestamp) are fixed for the context's lifetime.
//
// The returned context must be brought up by Init() before any source can
// be registered or any log call produces output.
func NewWithParams(sink io.Writer, withFuncName, withTimestamp bool) *Logger {
	l := new(Logger)
	if sink == nil {
		sink = io.Discard
	}
	l.sink = sink
	l.withFunc = withFuncName
	l.withTime = withTimestamp
	l.guard = nopGuard{}
	l.scratch = bytes.NewBuffer(make([]byte, 0, DEFAULT_SCRATCH_SIZE))
	return l
}

// Short form of NewWithParams: [os.Stderr] as sink, no function name and no
// timestamp in the prefix.
func New() *Logger {
	return NewWithParams(os.Stderr, false, false)
}

// A convenience to New() and then Init() in one call.
//
// Preferred usage example:
//
//	func main() {
//	    l, err := srclog.NewAndInit(srclog.LVL_INFO, true)
//	    ...
//	    defer l.Destroy()
//	}
func NewAndInit(minLevel LogLevel, threadSafe bool) (*Logger, error) {
	l := New()
	if err := l.Init(minLevel, threadSafe); err != nil {
		return nil, err
	}
	return l, nil
}

// Init brings the context up: sets the global minimal level, chooses the
// synchronization strategy and creates an empty source registry.
//
// Fails if minLevel is outside the valid range or if the context is already
// initialized (a second Init requires an intervening Destroy). Init itself
// must not run concurrently with other operations.
func (l *Logger) Init(minLevel LogLevel, threadSafe bool) error {
	if l.initialized {
		return errors.New(_ERROR_MESSAGE_ALREADY_INITIALIZED)
	}
	if !isValidThreshold(minLevel) {
		return errors.New(_ERROR_MESSAGE_INVALID_LEVEL)
	}
	if threadSafe {
		l.guard = &mutexGuard{}
	} else {
		l.guard = nopGuard{}
	}
	l.level = minLevel
	l.sources = make(map[string]LogLevel)
	l.order = nil
	l.initialized = true
	return nil
}

// Destroy clears the source registry and poisons the context: every
// subsequent operation behaves as uninitialized until a later Init brings
// the context back. Teardown acquires the same guard as all other
// operations, so in-flight calls finish before the registry is dropped.
//
// Destroying an uninitialized context is a no-op.
func (l *Logger) Destroy() error {
	l.guard.lock()
	defer l.guard.unlock()
	l.sources = nil
	l.order = nil
	l.initialized = false
	return nil
}

// True if the context was initialized and not destroyed since.
func (l *Logger) IsInitialized() bool {
	l.guard.lock()
	defer l.guard.unlock()
	return l.initialized
}

// SetGlobalLevel updates the global minimal level. The change is atomic
// with respect to concurrent gate checks and affects all sources without
// re-registration.
func (l *Logger) SetGlobalLevel(minLevel LogLevel) error {
	if !isValidThreshold(minLevel) {
		return errors.New(_ERROR_MESSAGE_INVALID_LEVEL)
	}
	l.guard.lock()
	defer l.guard.unlock()
	if !l.initialized {
		return errors.New(_ERROR_MESSAGE_NOT_INITIALIZED)
	}
	l.level = minLevel
	return nil
}

// GetGlobalLevel returns the current global minimal level.
func (l *Logger) GetGlobalLevel() LogLevel {
	l.guard.lock()
	defer l.guard.unlock()
	return l.level
}

// Pure threshold comparison: the requested level passes iff it is not
// below the current one.
func checkLogLevel(requested, current LogLevel) bool {
	return requested >= current
}

// isLogAllowed is the two-stage filtering decision. The global level is a
// cheap pre-filter; only then the registry is consulted. Unregistered
// sources never log, so the effective minimum for a source is
// max(global, per-source).
//
// The caller must hold the guard.
func (l *Logger) isLogAllowed(source string, level LogLevel) bool {
	if !checkLogLevel(level, l.level) {
		return false
	}
	if minLevel, registered := l.sources[source]; registered {
		return checkLogLevel(level, minLevel)
	}
	return false
}

// WillBePrinted reports whether a log call for the source at the given
// level would produce output right now.
//
// Panics on a requested level outside (LVL_INVALID, LVL_NONE] — that is a
// broken call site, not a runtime condition.
func (l *Logger) WillBePrinted(source string, level LogLevel) bool {
	assertRequestedLevel(level)
	l.guard.lock()
	defer l.guard.unlock()
	return l.isLogAllowed(source, level)
}

// Requested levels outside the valid enumeration range indicate a broken
// call site and halt instead of propagating.
func assertRequestedLevel(level LogLevel) {
	if level <= LVL_INVALID || level >= _LVL_CNT_for_checks_only {
		panic(_PANIC_MESSAGE_BAD_REQUEST_LEVEL + ": " + strconv.Itoa(int(level)))
	}
}
