package srclog

/*
registry.go

Operations on the source registry: a concurrent-safe mapping from source
name to minimal accepted severity. Keys are case-sensitive and unique;
registering an existing name overwrites it in place (last writer wins).
The registration order is tracked so dumps enumerate deterministically.
*/

import (
	"errors"
	"fmt"
	"slices"
)

// Register inserts a source with its minimal level, or overwrites the level
// of an already registered source. Idempotent for identical pairs.
//
// Fails if the level is outside the valid range, if the name is longer than
// SRC_STORED_MAX_SIZE bytes (rejected outright, never truncated), or if the
// context is not initialized.
func (l *Logger) Register(source string, minLevel LogLevel) error {
	if !isValidThreshold(minLevel) {
		return errors.New(_ERROR_MESSAGE_INVALID_LEVEL)
	}
	if len(source) > SRC_STORED_MAX_SIZE {
		return errors.New(_ERROR_MESSAGE_SOURCE_TOO_LONG)
	}
	l.guard.lock()
	defer l.guard.unlock()
	if !l.initialized {
		return errors.New(_ERROR_MESSAGE_NOT_INITIALIZED)
	}
	if _, exists := l.sources[source]; !exists {
		l.order = append(l.order, source)
	}
	l.sources[source] = minLevel
	return nil
}

// RegisterMany registers the descriptors in the given order. It stops at
// and reports the first failure; earlier registrations stay in effect (the
// batch is not atomic, there is no rollback).
func (l *Logger) RegisterMany(descrs []SrcDescr) error {
	for _, descr := range descrs {
		if err := l.Register(descr.Source, descr.MinLevel); err != nil {
			return fmt.Errorf("registering %q: %w", descr.Source, err)
		}
	}
	return nil
}

// Unregister removes the source from the registry. Absent sources and an
// uninitialized context are a no-op, not an error.
func (l *Logger) Unregister(source string) {
	l.guard.lock()
	defer l.guard.unlock()
	if !l.initialized {
		return
	}
	if _, registered := l.sources[source]; !registered {
		return
	}
	delete(l.sources, source)
	if at := slices.Index(l.order, source); at >= 0 {
		l.order = slices.Delete(l.order, at, at+1)
	}
}

// GetSrcLevel returns the minimal level stored for the source, or
// LVL_INVALID if the source is not registered.
func (l *Logger) GetSrcLevel(source string) LogLevel {
	l.guard.lock()
	defer l.guard.unlock()
	if minLevel, registered := l.sources[source]; registered {
		return minLevel
	}
	return LVL_INVALID
}
