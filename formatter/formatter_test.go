package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BROOSWAJNE/terrier/ansi"
	"github.com/BROOSWAJNE/terrier/core"
)

func fixedClock() time.Time {
	return time.Date(2026, 2, 18, 13, 4, 5, 678_000_000, time.UTC)
}

func TestLine_WriteTo(t *testing.T) {
	line := Line{
		Timestamp: "12:00:00 ",
		Prefix:    "INF ",
		Context:   []string{"db", "pool"},
		Separator: "/",
		Args:      []string{"count:", "42"},
	}

	var buf bytes.Buffer
	line.WriteTo(&buf)
	assert.Equal(t, "12:00:00 INF db/poolcount: 42\n", buf.String())
	assert.Equal(t, buf.String(), line.String())
}

func TestLine_Empty(t *testing.T) {
	line := Line{}
	assert.Equal(t, "\n", line.String())
}

func TestBufferPool(t *testing.T) {
	buf := GetBuffer()
	buf.WriteString("leftover")
	PutBuffer(buf)

	again := GetBuffer()
	assert.Equal(t, 0, again.Len())
	PutBuffer(again)

	big := GetBuffer()
	big.Grow(128 * 1024)
	PutBuffer(big) // dropped, must not panic
}

func TestTimestamp_Local(t *testing.T) {
	ts := NewTimestampAt(TimeLocal, ansi.NewPalette(false), fixedClock)
	assert.Equal(t, fixedClock().Format(LocalLayout)+" ", ts())
}

func TestTimestamp_Production(t *testing.T) {
	ts := NewTimestampAt(TimeProduction, ansi.NewPalette(false), fixedClock)
	assert.Equal(t, "2026-02-18T13:04:05.678Z ", ts())
}

func TestTimestamp_Dimmed(t *testing.T) {
	ts := NewTimestampAt(TimeProduction, ansi.NewPalette(true), fixedClock)
	out := ts()
	assert.True(t, strings.HasPrefix(out, "\x1b[2m"), "got %q", out)
	assert.True(t, strings.HasSuffix(out, " \x1b[22m"), "got %q", out)
	assert.Equal(t, "2026-02-18T13:04:05.678Z ", ansi.Strip(out))
}

func TestTimeStyleFromEnv(t *testing.T) {
	lookup := func(vars map[string]string) ansi.LookupFunc {
		return func(key string) (string, bool) {
			v, ok := vars[key]
			return v, ok
		}
	}
	assert.Equal(t, TimeProduction, TimeStyleFromEnv(lookup(map[string]string{EnvVar: "production"})))
	assert.Equal(t, TimeLocal, TimeStyleFromEnv(lookup(map[string]string{EnvVar: "development"})))
	assert.Equal(t, TimeLocal, TimeStyleFromEnv(lookup(nil)))

	assert.Equal(t, TimeLocal, TimeLocal.Resolve())
	assert.Equal(t, TimeProduction, TimeProduction.Resolve())
	assert.NotEqual(t, TimeFromEnv, TimeFromEnv.Resolve())
}

func TestDefaultTimestamp(t *testing.T) {
	out := ansi.Strip(DefaultTimestamp())
	assert.True(t, strings.HasSuffix(out, " "))
	assert.Greater(t, len(out), 1)
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "plain", Stringify("plain"))
	assert.Equal(t, "42", Stringify(42))
	assert.Equal(t, "[a b]", Stringify([]string{"a", "b"}))
	assert.NotContains(t, Stringify(map[string]int{"k": 1}), "\x1b[")
}

func TestNewPrefix_Plain(t *testing.T) {
	prefix := NewPrefix(ansi.NewPalette(false), core.StandardLevels)

	tests := []struct {
		level core.Level
		want  string
	}{
		{core.TraceLevel, "TRC "},
		{core.DebugLevel, "DBG "},
		{core.InfoLevel, "INF "},
		{core.WarnLevel, "WRN "},
		{core.ErrorLevel, "ERR "},
		{core.FatalLevel, "FTL "},
		{core.Level(99), "LEVEL(99) "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, prefix(tt.level))
	}
}

func TestNewPrefix_Colored(t *testing.T) {
	prefix := NewPrefix(ansi.NewPalette(true), core.StandardLevels)

	assert.Equal(t, "\x1b[36mINF\x1b[39m ", prefix(core.InfoLevel))
	assert.Equal(t, "\x1b[1m\x1b[33mWRN\x1b[39m\x1b[22m ", prefix(core.WarnLevel))
	assert.Equal(t, "\x1b[1m\x1b[31mERR\x1b[39m\x1b[22m ", prefix(core.ErrorLevel))
	assert.Equal(t, "\x1b[1m\x1b[41mFTL\x1b[0m\x1b[22m ", prefix(core.FatalLevel))

	for _, def := range core.StandardLevels.Defs() {
		assert.Equal(t, def.Tag+" ", ansi.Strip(prefix(def.Level)))
	}
}

func TestNewPrefix_CustomSet(t *testing.T) {
	set, err := core.NewLevelSet(
		core.LevelDef{Level: core.InfoLevel, Name: "INFO", Tag: "INF"},
		core.LevelDef{Level: 40, Name: "NOTICE", Tag: "NTC"},
		core.LevelDef{Level: 41, Name: "AUDIT"},
	)
	require.NoError(t, err)

	prefix := NewPrefix(ansi.NewPalette(true), set)
	assert.Equal(t, "NTC ", prefix(40))
	assert.Equal(t, "AUDIT ", prefix(41))
	assert.Equal(t, "INF ", ansi.Strip(prefix(core.InfoLevel)))
	// not a member of the set
	assert.Equal(t, "TRACE ", prefix(core.TraceLevel))
}

func TestDefaultPrefix(t *testing.T) {
	assert.Equal(t, "ERR ", ansi.Strip(DefaultPrefix(core.ErrorLevel)))
}
