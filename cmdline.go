package args

import (
	"fmt"
	"strings"

	"github.com/ThePreviousOne/args-parser/parse"
)

// NewCmdLine creates an empty command line parser with the default '-'
// marker character.
func NewCmdLine(opts CmdLineOpts) *CmdLine {
	return &CmdLine{
		registry: newRegistry(),
		opts:     opts,
		prefixes: []rune{'-'},
	}
}

// AddArg registers a top-level declaration. Registering nil fails with
// ErrNilArgument; re-registering a primary name fails with
// ErrAlreadyRegistered.
func (c *CmdLine) AddArg(arg Arg) error {
	return c.registry.add(arg)
}

// SetArgumentPrefixes replaces the marker characters used by the token
// classifier (defaults to '-').
func (c *CmdLine) SetArgumentPrefixes(prefixes []rune) error {
	if len(prefixes) == 0 {
		return fmt.Errorf("can't parse with an empty argument prefix list")
	}
	c.prefixes = prefixes

	return nil
}

// FindArgument resolves name against the top-level registry, falling back to
// the registry chain of the selected command. Top-level declarations always
// win. Returns nil when nothing matches.
func (c *CmdLine) FindArgument(name string) Arg {
	arg, _ := c.resolve(name)

	return arg
}

// SelectedCommand returns the top-level command selected by the last parse,
// or nil.
func (c *CmdLine) SelectedCommand() *Command {
	return c.registry.selected
}

// Parse consumes the given tokens (the executable name already stripped)
// against the declared arguments. It validates the declarations first, runs
// the token loop, and finishes with the completeness checks. The first error
// aborts parsing; there is no partial-result mode.
func (c *CmdLine) Parse(tokens []string) error {
	if err := c.registry.checkBeforeParsing(NewSeenNames()); err != nil {
		return err
	}

	c.registry.resetSelection()
	c.callbacks.Init()

	if env := c.envTokens(); len(env) > 0 {
		merged := make([]string, 0, len(env)+len(tokens))
		merged = append(merged, env...)
		merged = append(merged, tokens...)
		tokens = merged
	}

	state := parse.NewState(tokens)
	for !state.AtEnd() {
		word, err := state.Next()
		if err != nil {
			return err
		}

		if eq := strings.IndexRune(word, '='); eq >= 0 {
			if value := word[eq+1:]; value != "" {
				state.Prepend(value)
			}
			word = word[:eq]
		}

		switch c.classify(word) {
		case kindLongArg:
			arg, _ := c.resolve(word)
			if arg == nil {
				return c.unknownArgument(word)
			}
			if err := arg.Process(state); err != nil {
				return err
			}
		case kindFlagCombo:
			if err := c.processFlagCombo(word, state); err != nil {
				return err
			}
		default:
			if err := c.processBareWord(word, state); err != nil {
				return err
			}
		}
	}

	if err := c.registry.checkAfterParsing(); err != nil {
		return err
	}
	if c.opts&CommandIsRequired != 0 && c.registry.selected == nil {
		return ErrMissingCommand
	}

	return nil
}

// ParseString splits a raw command line with shell quoting rules and parses
// the result.
func (c *CmdLine) ParseString(commandLine string) error {
	tokens, err := parse.Split(commandLine)
	if err != nil {
		return err
	}

	return c.Parse(tokens)
}

// ExecuteCommands runs the callbacks of the commands selected by the last
// parse, in selection order, stopping at the first error.
func (c *CmdLine) ExecuteCommands() error {
	for c.callbacks.Len() > 0 {
		v, _ := c.callbacks.PopFront()
		cmd := v.(*Command)
		if cmd.callback == nil {
			continue
		}
		if err := cmd.callback(c, cmd); err != nil {
			return err
		}
	}

	return nil
}

// resolve walks the registry chain starting at the top level and descending
// through selected commands, returning the match and the scope owning it.
func (c *CmdLine) resolve(name string) (Arg, *registry) {
	reg := c.registry
	for {
		if arg := reg.find(name); arg != nil {
			return arg, reg
		}
		if reg.selected == nil {
			return nil, nil
		}
		reg = reg.selected.registry
	}
}

// processFlagCombo splits a combo token into single-character flag names and
// processes each in order. Processing is fail-fast: flags already processed
// keep their effects when a later character fails. A value-bearing flag is
// only legal in the last position, since anything it consumed would swallow
// the rest of the combo's meaning.
func (c *CmdLine) processFlagCombo(word string, state parse.State) error {
	runes := []rune(word)
	marker := string(runes[0])

	for i := 1; i < len(runes); i++ {
		flag := marker + string(runes[i])
		arg, _ := c.resolve(flag)
		if arg == nil {
			return &UnknownArgumentError{Name: flag}
		}
		if i < len(runes)-1 && arg.IsWithValue() {
			return fmt.Errorf("%w: %q in combo %q", ErrOnlyLastFlagCanHaveValue, flag, word)
		}
		if err := arg.Process(state); err != nil {
			return err
		}
	}

	return nil
}

// processBareWord resolves a marker-less token: a command selects itself in
// its owning scope (a second selection in the same scope is a hard error),
// anything else is processed as a positionally used named argument.
func (c *CmdLine) processBareWord(word string, state parse.State) error {
	arg, scope := c.resolve(word)
	if arg == nil {
		return c.unknownArgument(word)
	}

	cmd, ok := arg.(*Command)
	if !ok {
		return arg.Process(state)
	}

	if scope.selected != nil {
		return &MultipleCommandsError{
			First:  scope.selected.Name(),
			Second: cmd.Name(),
		}
	}
	scope.selected = cmd
	if cmd.callback != nil {
		c.callbacks.PushBack(cmd)
	}

	return cmd.Process(state)
}
