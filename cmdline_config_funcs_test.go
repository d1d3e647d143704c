package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmdLineWith(t *testing.T) {
	verbose := NewFlag("-v", false, "--verbose")
	out := NewOption("--out", false)
	build := NewCommand("build")

	cmdLine, err := NewCmdLineWith(
		WithFlag(verbose),
		WithOption(out),
		WithCommand(build),
		WithPositional(NewPositional("level", true, false)),
		WithCommandRequired(),
		WithEnvPrefix("APP"),
	)
	require.NoError(t, err)

	require.NoError(t, cmdLine.Parse([]string{"build", "-v"}))
	assert.True(t, verbose.IsDefined())
	assert.Same(t, build, cmdLine.SelectedCommand())
}

func TestNewCmdLineWith_ConfigurationError(t *testing.T) {
	cmdLine, err := NewCmdLineWith(
		WithFlag(NewFlag("-v", false)),
		WithFlag(NewFlag("-v", false)),
	)
	assert.Nil(t, cmdLine, "a failing configuration function should yield no parser")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestNewCmdLineWith_InvalidPrefixes(t *testing.T) {
	_, err := NewCmdLineWith(WithArgumentPrefixes(nil))
	assert.Error(t, err)
}
