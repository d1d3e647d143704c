package args

// NewCmdLineWith allows initialization of a CmdLine using option functions.
// The caller should always test for error on return because the CmdLine is
// nil when a configuration function fails.
//
// Configuration example:
//
//	cmdLine, err := NewCmdLineWith(
//		WithFlag(NewFlag("-v", false, "--verbose")),
//		WithOption(NewOption("--out", true, "-o")),
//		WithCommand(NewCommand("build")),
//		WithCommandRequired(),
//	)
func NewCmdLineWith(configs ...ConfigureCmdLineFunc) (*CmdLine, error) {
	cmdLine := NewCmdLine(Empty)

	var err error
	for _, config := range configs {
		config(cmdLine, &err)
		if err != nil {
			return nil, err
		}
	}

	return cmdLine, nil
}

// WithFlag is a wrapper for AddArg which registers a valueless flag.
func WithFlag(flag *Flag) ConfigureCmdLineFunc {
	return func(cmdLine *CmdLine, err *error) {
		*err = cmdLine.AddArg(flag)
	}
}

// WithOption is a wrapper for AddArg which registers a value-bearing option.
func WithOption(option *Option) ConfigureCmdLineFunc {
	return func(cmdLine *CmdLine, err *error) {
		*err = cmdLine.AddArg(option)
	}
}

// WithCommand is a wrapper for AddArg which registers a command and its
// nested registry.
func WithCommand(command *Command) ConfigureCmdLineFunc {
	return func(cmdLine *CmdLine, err *error) {
		*err = cmdLine.AddArg(command)
	}
}

// WithPositional is a wrapper for AddArg which registers a marker-less named
// argument.
func WithPositional(positional *Positional) ConfigureCmdLineFunc {
	return func(cmdLine *CmdLine, err *error) {
		*err = cmdLine.AddArg(positional)
	}
}

// WithCommandRequired makes parsing fail with ErrMissingCommand unless a
// command is selected.
func WithCommandRequired() ConfigureCmdLineFunc {
	return func(cmdLine *CmdLine, err *error) {
		cmdLine.opts |= CommandIsRequired
	}
}

// WithArgumentPrefixes allows providing custom marker characters (defaults
// to '-').
func WithArgumentPrefixes(prefixes []rune) ConfigureCmdLineFunc {
	return func(cmdLine *CmdLine, err *error) {
		*err = cmdLine.SetArgumentPrefixes(prefixes)
	}
}

// WithEnvPrefix enables environment-supplied defaults under the given
// variable name prefix.
func WithEnvPrefix(prefix string) ConfigureCmdLineFunc {
	return func(cmdLine *CmdLine, err *error) {
		cmdLine.SetEnvPrefix(prefix)
	}
}

// WithEnvNameConverter allows setting a custom name converter for
// environment variable names.
func WithEnvNameConverter(converter NameConversionFunc) ConfigureCmdLineFunc {
	return func(cmdLine *CmdLine, err *error) {
		cmdLine.SetEnvNameConverter(converter)
	}
}
