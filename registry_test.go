package srclog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, minLevel LogLevel) (*Logger, *FakeWriter) {
	t.Helper()
	out := &FakeWriter{}
	l := NewWithParams(out, false, false)
	require.NoError(t, l.Init(minLevel, false))
	return l, out
}

func Test_Register_Basic(t *testing.T) {
	l, _ := newTestLogger(t, LVL_TRACE)
	assert.NoError(t, l.Register("NET", LVL_DEBUG))
	assert.Equal(t, LVL_DEBUG, l.GetSrcLevel("NET"))
	assert.Equal(t, LVL_INVALID, l.GetSrcLevel("DISK"))
}

func Test_Register_Overwrite(t *testing.T) {
	l, _ := newTestLogger(t, LVL_TRACE)
	assert.NoError(t, l.Register("NET", LVL_DEBUG))
	assert.NoError(t, l.Register("NET", LVL_ERROR))
	assert.Equal(t, LVL_ERROR, l.GetSrcLevel("NET"))
	snap := l.SrcDump()
	require.NotNil(t, snap)
	assert.Len(t, snap.Sources, 1, "overwrite must not create duplicates")
}

func Test_Register_Idempotent(t *testing.T) {
	l, _ := newTestLogger(t, LVL_TRACE)
	assert.NoError(t, l.Register("NET", LVL_DEBUG))
	assert.NoError(t, l.Register("NET", LVL_DEBUG))
	assert.Equal(t, LVL_DEBUG, l.GetSrcLevel("NET"))
	assert.Len(t, l.SrcDump().Sources, 1)
}

func Test_Register_InvalidLevel(t *testing.T) {
	l, _ := newTestLogger(t, LVL_TRACE)
	assert.EqualError(t, l.Register("NET", LVL_INVALID), _ERROR_MESSAGE_INVALID_LEVEL)
	assert.EqualError(t, l.Register("NET", _LVL_CNT_for_checks_only), _ERROR_MESSAGE_INVALID_LEVEL)
	assert.Equal(t, LVL_INVALID, l.GetSrcLevel("NET"))
}

func Test_Register_NoneLevelIsValid(t *testing.T) {
	// NONE is a legal threshold: it suppresses the source without
	// unregistering it.
	l, _ := newTestLogger(t, LVL_RAW)
	assert.NoError(t, l.Register("MUTED", LVL_NONE))
	assert.False(t, l.WillBePrinted("MUTED", LVL_ERROR))
	assert.Equal(t, LVL_NONE, l.GetSrcLevel("MUTED"))
}

func Test_Register_SourceTooLong(t *testing.T) {
	l, _ := newTestLogger(t, LVL_TRACE)
	edge := strings.Repeat("x", SRC_STORED_MAX_SIZE)
	assert.NoError(t, l.Register(edge, LVL_INFO), "exactly the stored maximum is accepted")
	over := edge + "x"
	assert.EqualError(t, l.Register(over, LVL_INFO), _ERROR_MESSAGE_SOURCE_TOO_LONG)
	assert.Equal(t, LVL_INVALID, l.GetSrcLevel(over))
}

func Test_Register_NotInitialized(t *testing.T) {
	l := NewWithParams(&FakeWriter{}, false, false)
	assert.EqualError(t, l.Register("NET", LVL_INFO), _ERROR_MESSAGE_NOT_INITIALIZED)
}

func Test_RegisterMany_StopsAtFirstFailure(t *testing.T) {
	l, _ := newTestLogger(t, LVL_TRACE)
	err := l.RegisterMany([]SrcDescr{
		{Source: "A", MinLevel: LVL_DEBUG},
		{Source: "B", MinLevel: LVL_INVALID},
		{Source: "C", MinLevel: LVL_INFO},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"B"`)
	assert.Contains(t, err.Error(), _ERROR_MESSAGE_INVALID_LEVEL)
	// prior successful registrations stay, later ones never happen
	assert.Equal(t, LVL_DEBUG, l.GetSrcLevel("A"))
	assert.Equal(t, LVL_INVALID, l.GetSrcLevel("B"))
	assert.Equal(t, LVL_INVALID, l.GetSrcLevel("C"))
}

func Test_RegisterMany_Empty(t *testing.T) {
	l, _ := newTestLogger(t, LVL_TRACE)
	assert.NoError(t, l.RegisterMany(nil))
	assert.NoError(t, l.RegisterMany([]SrcDescr{}))
}

func Test_Unregister(t *testing.T) {
	l, _ := newTestLogger(t, LVL_TRACE)
	require.NoError(t, l.Register("NET", LVL_DEBUG))
	l.Unregister("NET")
	assert.Equal(t, LVL_INVALID, l.GetSrcLevel("NET"))
	assert.Empty(t, l.SrcDump().Sources)
}

func Test_Unregister_AbsentIsNoop(t *testing.T) {
	l, _ := newTestLogger(t, LVL_TRACE)
	assert.NotPanics(t, func() { l.Unregister("NEVER_REGISTERED") })
}

func Test_Unregister_NotInitializedIsNoop(t *testing.T) {
	l := NewWithParams(&FakeWriter{}, false, false)
	assert.NotPanics(t, func() { l.Unregister("NET") })
}

func Test_Unregister_KeepsOrderOfOthers(t *testing.T) {
	l, _ := newTestLogger(t, LVL_TRACE)
	require.NoError(t, l.RegisterMany([]SrcDescr{
		{Source: "A", MinLevel: LVL_INFO},
		{Source: "B", MinLevel: LVL_INFO},
		{Source: "C", MinLevel: LVL_INFO},
	}))
	l.Unregister("B")
	snap := l.SrcDump()
	require.NotNil(t, snap)
	require.Len(t, snap.Sources, 2)
	assert.Equal(t, "A", snap.Sources[0].Source)
	assert.Equal(t, "C", snap.Sources[1].Source)
}
