package srclog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// FakeWriter captures everything written to it. Not thread-safe by itself:
// concurrent tests rely on the logger's guard serializing writes.
type FakeWriter struct {
	buffer []byte
}

func (f *FakeWriter) Write(b []byte) (int, error) {
	f.buffer = append(f.buffer, b...)
	return len(b), nil
}
func (f *FakeWriter) String() string { return string(f.buffer) }
func (f *FakeWriter) Clear()         { f.buffer = f.buffer[:0] }

func Test_ParseLevel_RoundTrip(t *testing.T) {
	for level := LVL_INVALID; level < _LVL_CNT_for_checks_only; level++ {
		assert.Equal(t, level, ParseLevel(level.String()), "round trip failed for %s", level)
	}
}

func Test_ParseLevel_CaseInsensitive(t *testing.T) {
	for _, name := range LevelNames {
		assert.Equal(t, ParseLevel(name), ParseLevel(strings.ToLower(name)))
		mixed := name[:1] + strings.ToLower(name[1:])
		assert.Equal(t, ParseLevel(name), ParseLevel(mixed))
	}
	assert.Equal(t, LVL_ERROR, ParseLevel("error"))
	assert.Equal(t, LVL_ERROR, ParseLevel("ERROR"))
}

func Test_ParseLevel_Unknown(t *testing.T) {
	for _, bogus := range []string{"bogus", "", "WARNINGS", " INFO", "INFO "} {
		assert.Equal(t, LVL_INVALID, ParseLevel(bogus), "input %q", bogus)
	}
}

func Test_LogLevel_String_OutOfRange(t *testing.T) {
	assert.Equal(t, "INVALID", _LVL_CNT_for_checks_only.String())
	assert.Equal(t, "INVALID", LogLevel(255).String())
	assert.Equal(t, "NONE", LVL_NONE.String())
}

func Test_NormLevel(t *testing.T) {
	assert.Equal(t, LVL_WARNING, normLevel(LVL_WARNING))
	assert.Equal(t, LVL_INVALID, normLevel(_LVL_CNT_for_checks_only))
	assert.Equal(t, LVL_INVALID, normLevel(LogLevel(200)))
}

func Test_IsValidThreshold(t *testing.T) {
	assert.False(t, isValidThreshold(LVL_INVALID))
	assert.False(t, isValidThreshold(_LVL_CNT_for_checks_only))
	assert.False(t, isValidThreshold(LogLevel(100)))
	for level := LVL_RAW; level <= LVL_NONE; level++ {
		assert.True(t, isValidThreshold(level), "%s must be a valid threshold", level)
	}
}
