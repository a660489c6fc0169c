package srclog

/*
common.go

Defines the core data types, constants and helpers used by the package:
  - basetype and typed aliases for the level enumeration
  - the level name table with parse/render helpers
  - field widths for the line prefix and the hexdump rendering
  - SrcDescr / Snapshot: the registry export types
  - Logger: the central state object holding the source registry, the
    global threshold, the synchronization strategy and the scratch buffer
*/

import (
	"bytes"
	"io"
	"strings"
)

type basetype byte // basetype is the underlying byte-sized representation for enums

type LogLevel basetype // Log severity (alias for byte)

const (
	// Severity values, ordered. The trailing _LVL_CNT_for_checks_only is
	// used as an exclusive upper bound for range checks.
	LVL_INVALID LogLevel = iota // sentinel below all real levels, never a valid threshold
	LVL_RAW                     // pseudo-level used only for buffer hexdumps
	LVL_TRACE
	LVL_DEBUG
	LVL_INFO
	LVL_WARNING
	LVL_ERROR
	LVL_NONE // as a threshold allows nothing
	_LVL_CNT_for_checks_only
)

const (
	// Fixed field widths of the composed line prefix and the hexdump rows.
	SRC_DISPLAY_MAX_SIZE   = 16  // displayed part of the source name
	SRC_STORED_MAX_SIZE    = 128 // longest source name accepted by Register
	FILE_NAME_MAX_SIZE     = 20  // displayed part of the file basename
	FUNCTION_NAME_MAX_SIZE = 20  // displayed part of the function name
	LINE_NUMBER_WIDTH      = 5   // right-aligned line number field
	RAW_ADDR_FIELD_WIDTH   = 8   // hex digits in the hexdump offset column
	HEXDUMP_ROW_BYTES      = 16  // bytes rendered per hexdump row

	DEFAULT_SCRATCH_SIZE = 256 // initial capacity of the shared scratch buffer
)

// LevelMap is a fixed-size array with one entry per log level.
type LevelMap [_LVL_CNT_for_checks_only]string

// Canonical level names used by ParseLevel and LogLevel.String.
var LevelNames = &LevelMap{
	"INVALID", //LVL_INVALID
	"RAW",     //LVL_RAW
	"TRACE",   //LVL_TRACE
	"DEBUG",   //LVL_DEBUG
	"INFO",    //LVL_INFO
	"WARNING", //LVL_WARNING
	"ERROR",   //LVL_ERROR
	"NONE",    //LVL_NONE
}

// SrcDescr describes one registered source: its name and the minimal
// severity it accepts. Used for batch registration and for dumps.
type SrcDescr struct {
	Source   string
	MinLevel LogLevel
}

// Snapshot is an independently owned, immutable copy of the registry taken
// by SrcDump. The live registry may mutate freely afterwards without
// affecting it.
type Snapshot struct {
	GlobalLevel LogLevel
	Sources     []SrcDescr
}

// Logger is the central state holder: the source registry, the global
// minimal level, the synchronization strategy chosen at Init and the
// scratch buffer reused while formatting output.
//
// One Logger per process is the intended usage, but instances are
// independent so tests can construct isolated ones.
type Logger struct {
	guard       guard               // no-op or mutual-exclusion strategy, chosen at Init
	sources     map[string]LogLevel // registered sources and their minimal levels
	order       []string            // registration order, kept for deterministic dumps
	sink        io.Writer           // destination for finished lines
	scratch     *bytes.Buffer       // buffer reused while building output (guarded)
	level       LogLevel            // global minimal level
	withFunc    bool                // render the function name in the prefix
	withTime    bool                // render the timestamp in the prefix
	initialized bool
}

// Generic byte normalization helper.
func norm_byte[T ~byte](val, overlimit, def T) T {
	if val < overlimit {
		return val
	} else {
		return def
	}
}

// Ensures a provided LogLevel is within the valid range
func normLevel(level LogLevel) LogLevel {
	return norm_byte(level, _LVL_CNT_for_checks_only, LVL_INVALID)
}

// True for levels usable as a filter threshold: anything above the
// LVL_INVALID sentinel up to and including LVL_NONE.
func isValidThreshold(level LogLevel) bool {
	return level > LVL_INVALID && level < _LVL_CNT_for_checks_only
}

// String returns the canonical name of the level, or the INVALID name for
// out-of-range values. Never fails.
func (level LogLevel) String() string {
	return LevelNames[normLevel(level)]
}

// ParseLevel converts a level name to its LogLevel value. Matching is
// case-insensitive and exact. Unknown names map to LVL_INVALID.
//
// Pure lookup, safe to call before Init.
func ParseLevel(name string) LogLevel {
	for level := LVL_INVALID; level < _LVL_CNT_for_checks_only; level++ {
		if strings.EqualFold(name, LevelNames[level]) {
			return level
		}
	}
	return LVL_INVALID
}
