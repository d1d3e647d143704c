package args

import (
	"github.com/ef-ds/deque"
	"github.com/iancoleman/strcase"
)

// ArgType discriminates the supported argument kinds.
type ArgType int

const (
	// ArgTypeFlag is a valueless boolean argument ("-v", "--verbose").
	ArgTypeFlag ArgType = iota
	// ArgTypeOption is a named argument which consumes exactly one value.
	ArgTypeOption
	// ArgTypeCommand is a bare-word argument owning its own nested registry.
	// At most one command per registry scope may be selected per parse.
	ArgTypeCommand
	// ArgTypePositional is a bare-word named argument which may consume one
	// value.
	ArgTypePositional
)

// String returns a human-readable name for the argument kind.
func (t ArgType) String() string {
	switch t {
	case ArgTypeFlag:
		return "flag"
	case ArgTypeOption:
		return "option"
	case ArgTypeCommand:
		return "command"
	case ArgTypePositional:
		return "positional"
	}

	return "unknown"
}

// CmdLineOpts holds command line parsing modes.
type CmdLineOpts int

const (
	// Empty - no special options.
	Empty CmdLineOpts = 0
	// CommandIsRequired - parsing fails unless a command was selected.
	CommandIsRequired CmdLineOpts = 1
)

// CommandFunc is an optional callback attached to a Command. Callbacks of
// selected commands are queued during Parse and run by ExecuteCommands.
type CommandFunc func(cmdLine *CmdLine, command *Command) error

// ConfigureCmdLineFunc is used when configuring a CmdLine with NewCmdLineWith.
type ConfigureCmdLineFunc func(cmdLine *CmdLine, err *error)

// NameConversionFunc converts a flag name to an environment variable name.
type NameConversionFunc func(string) string

// DefaultEnvNameConverter converts "cache-dir" to "CACHE_DIR".
var DefaultEnvNameConverter NameConversionFunc = func(s string) string {
	return strcase.ToScreamingSnake(s)
}

// CmdLine holds the declared arguments and parses command line tokens against
// them. A CmdLine is configured once and then parses; a single CmdLine must
// not be parsed from multiple goroutines concurrently.
type CmdLine struct {
	registry         *registry
	opts             CmdLineOpts
	prefixes         []rune
	envPrefix        string
	envNameConverter NameConversionFunc
	callbacks        deque.Deque
}
