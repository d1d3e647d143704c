package args

import "github.com/ThePreviousOne/args-parser/parse"

// Command is a bare-word argument owning its own nested registry of flags,
// options, positionals and sub-commands. At most one command per registry
// scope may be selected during a parse; once selected, name lookups fall back
// to its registry when a token is not found at the outer level.
type Command struct {
	baseArg
	registry *registry
	callback CommandFunc
}

// NewCommand declares a command, e.g. NewCommand("build").
func NewCommand(name string, aliases ...string) *Command {
	return &Command{
		baseArg: baseArg{
			name:    name,
			aliases: aliases,
		},
		registry: newRegistry(),
	}
}

func (c *Command) Type() ArgType {
	return ArgTypeCommand
}

func (c *Command) IsWithValue() bool {
	return false
}

// AddArg registers a declaration in the command's nested registry.
func (c *Command) AddArg(arg Arg) error {
	return c.registry.add(arg)
}

// SetCallback attaches a callback queued when the command is selected and
// executed by CmdLine.ExecuteCommands.
func (c *Command) SetCallback(fn CommandFunc) {
	c.callback = fn
}

// Process records the selection. The command's children keep being resolved
// by the engine's registry descent, so no recursion happens here.
func (c *Command) Process(_ parse.State) error {
	c.defined = true

	return nil
}

// FindChild resolves name in the command's registry, descending into its
// selected sub-command when not found at this level.
func (c *Command) FindChild(name string) Arg {
	if arg := c.registry.find(name); arg != nil {
		return arg
	}
	if c.registry.selected != nil {
		return c.registry.selected.FindChild(name)
	}

	return nil
}

// CheckBeforeParsing adds the command's own names to the enclosing scope and
// validates its children into a fresh scope of their own.
func (c *Command) CheckBeforeParsing(seen *SeenNames) error {
	if err := c.baseArg.CheckBeforeParsing(seen); err != nil {
		return err
	}

	return c.registry.checkBeforeParsing(NewSeenNames())
}

// CheckAfterParsing validates the command's children, but only when the
// command was selected - required arguments of an unselected command are not
// missing.
func (c *Command) CheckAfterParsing() error {
	if err := c.baseArg.CheckAfterParsing(); err != nil {
		return err
	}
	if !c.defined {
		return nil
	}

	return c.registry.checkAfterParsing()
}

// SuggestNames collects near-misses of candidate from the command's own names
// and its whole subtree. Used when the command is selected; for unselected
// commands only command names are offered, see suggestCommandNames.
func (c *Command) SuggestNames(candidate string, found *[]string) bool {
	matched := c.baseArg.SuggestNames(candidate, found)

	c.registry.each(func(arg Arg) bool {
		if cmd, ok := arg.(*Command); ok && cmd != c.registry.selected {
			if cmd.suggestCommandNames(candidate, found) {
				matched = true
			}
			return true
		}
		if arg.SuggestNames(candidate, found) {
			matched = true
		}

		return true
	})

	return matched
}

// suggestCommandNames collects near-misses among the command's own names and
// the names of its nested commands, skipping flags of a command the user
// never selected.
func (c *Command) suggestCommandNames(candidate string, found *[]string) bool {
	matched := c.baseArg.SuggestNames(candidate, found)

	c.registry.each(func(arg Arg) bool {
		if cmd, ok := arg.(*Command); ok {
			if cmd.suggestCommandNames(candidate, found) {
				matched = true
			}
		}

		return true
	})

	return matched
}
