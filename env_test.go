package args

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdLine_EnvSuppliedDefaults(t *testing.T) {
	t.Setenv("APP_OUT", "dist")
	t.Setenv("APP_VERBOSE", "1")

	cmdLine := NewCmdLine(Empty)
	cmdLine.SetEnvPrefix("APP")
	out := NewOption("--out", false)
	verbose := NewFlag("--verbose", false, "-v")
	require.NoError(t, cmdLine.AddArg(out))
	require.NoError(t, cmdLine.AddArg(verbose))

	require.NoError(t, cmdLine.Parse(nil))
	assert.Equal(t, "dist", out.Value(), "a set variable should supply the option value")
	assert.True(t, verbose.IsDefined(), "a true variable should set the flag")
}

func TestCmdLine_ExplicitTokensWinOverEnv(t *testing.T) {
	t.Setenv("APP_OUT", "from-env")

	cmdLine := NewCmdLine(Empty)
	cmdLine.SetEnvPrefix("APP")
	out := NewOption("--out", false)
	require.NoError(t, cmdLine.AddArg(out))

	require.NoError(t, cmdLine.Parse([]string{"--out", "explicit"}))
	assert.Equal(t, "explicit", out.Value(), "command line tokens should override the environment")
}

func TestCmdLine_EnvNameDerivation(t *testing.T) {
	cmdLine := NewCmdLine(Empty)
	cmdLine.SetEnvPrefix("APP")

	assert.Equal(t, "APP_CACHE_DIR", cmdLine.envName("--cache-dir"))
	assert.Equal(t, "APP_V", cmdLine.envName("-v"))

	cmdLine.SetEnvNameConverter(strings.ToUpper)
	assert.Equal(t, "APP_CACHE-DIR", cmdLine.envName("--cache-dir"))
}

func TestCmdLine_EnvDisabledWithoutPrefix(t *testing.T) {
	t.Setenv("APP_OUT", "dist")

	cmdLine := NewCmdLine(Empty)
	out := NewOption("--out", false)
	require.NoError(t, cmdLine.AddArg(out))

	require.NoError(t, cmdLine.Parse(nil))
	assert.False(t, out.IsDefined(), "without a prefix the environment is ignored")
}
