package args

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOption_TypedAccessors(t *testing.T) {
	cmdLine := NewCmdLine(Empty)
	ratio := NewOption("--ratio", false)
	count := NewOption("--count", false)
	dry := NewOption("--dry-run", false)
	since := NewOption("--since", false)
	for _, opt := range []*Option{ratio, count, dry, since} {
		require.NoError(t, cmdLine.AddArg(opt))
	}

	err := cmdLine.Parse([]string{"--ratio=0.5", "--count=42", "--dry-run=true", "--since=2021-03-01"})
	require.NoError(t, err)

	f, err := ratio.Float()
	assert.NoError(t, err)
	assert.Equal(t, 0.5, f)

	n, err := count.Int()
	assert.NoError(t, err)
	assert.Equal(t, int64(42), n)

	b, err := dry.Bool()
	assert.NoError(t, err)
	assert.True(t, b)

	ts, err := since.Time()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC), ts)
}

func TestOption_TypedAccessorErrors(t *testing.T) {
	cmdLine := NewCmdLine(Empty)
	count := NewOption("--count", false)
	require.NoError(t, cmdLine.AddArg(count))
	require.NoError(t, cmdLine.Parse([]string{"--count=alphabet"}))

	_, err := count.Int()
	assert.Error(t, err, "a non-numeric value should not convert to int")
	_, err = count.Time()
	assert.Error(t, err, "a non-date value should not convert to time")
}

func TestOption_DefaultValue(t *testing.T) {
	out := NewOption("--out", false)
	out.SetDefault("build")

	assert.Equal(t, "build", out.Value(), "an unmatched option should report its default")

	cmdLine := NewCmdLine(Empty)
	require.NoError(t, cmdLine.AddArg(out))
	require.NoError(t, cmdLine.Parse([]string{"--out", "dist"}))
	assert.Equal(t, "dist", out.Value(), "a parsed value should shadow the default")
}

func TestFlag_Describe(t *testing.T) {
	verbose := NewFlag("-v", false, "--verbose")
	verbose.Describe("print detailed progress")

	assert.Equal(t, "print detailed progress", verbose.Description())
	assert.Equal(t, "-v", verbose.Name())
	assert.Equal(t, []string{"--verbose"}, verbose.Aliases())
	assert.Equal(t, ArgTypeFlag, verbose.Type())
	assert.False(t, verbose.IsWithValue())
}
