package args

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map"
)

// SeenNames accumulates the names encountered during the pre-parse
// correctness walk of one registry scope. Adding a name twice fails with
// DuplicateArgumentError.
type SeenNames struct {
	names map[string]struct{}
}

// NewSeenNames creates an empty name accumulator.
func NewSeenNames() *SeenNames {
	return &SeenNames{names: map[string]struct{}{}}
}

func (s *SeenNames) add(name string) error {
	if _, exists := s.names[name]; exists {
		return &DuplicateArgumentError{Name: name}
	}
	s.names[name] = struct{}{}

	return nil
}

// registry is one nesting scope of declared arguments: an insertion-ordered
// primary-name index plus the command selected in this scope during the
// current parse.
type registry struct {
	args     *orderedmap.OrderedMap
	selected *Command
}

func newRegistry() *registry {
	return &registry{args: orderedmap.New()}
}

// add registers a declaration. Registering nil or re-registering a primary
// name is a configuration error raised immediately; name collisions across
// aliases are caught later by the pre-parse correctness walk.
func (r *registry) add(arg Arg) error {
	if arg == nil {
		return ErrNilArgument
	}

	if _, exists := r.args.Get(arg.Name()); exists {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, arg.Name())
	}
	r.args.Set(arg.Name(), arg)

	return nil
}

// find returns the declaration matching name (primary or alias) or nil.
func (r *registry) find(name string) Arg {
	for pair := r.args.Oldest(); pair != nil; pair = pair.Next() {
		arg := pair.Value.(Arg)
		if arg.Matches(name) {
			return arg
		}
	}

	return nil
}

// each walks the declarations in declaration order until fn returns false.
func (r *registry) each(fn func(arg Arg) bool) {
	for pair := r.args.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Value.(Arg)) {
			return
		}
	}
}

// checkBeforeParsing validates this scope: non-command declarations first,
// then commands, in declaration order so duplicate errors are deterministic.
// Commands validate their children into their own nested scope, which is what
// allows a command to reuse a parent-level name.
func (r *registry) checkBeforeParsing(seen *SeenNames) error {
	var cmds []*Command
	var err error

	r.each(func(arg Arg) bool {
		if cmd, ok := arg.(*Command); ok {
			cmds = append(cmds, cmd)
			return true
		}
		err = arg.CheckBeforeParsing(seen)

		return err == nil
	})
	if err != nil {
		return err
	}

	for _, cmd := range cmds {
		if err := cmd.CheckBeforeParsing(seen); err != nil {
			return err
		}
	}

	return nil
}

// checkAfterParsing asks every declaration in this scope to self-validate.
func (r *registry) checkAfterParsing() error {
	var err error
	r.each(func(arg Arg) bool {
		err = arg.CheckAfterParsing()

		return err == nil
	})

	return err
}

// resetSelection clears the command selections of this scope and every
// nested one, making the registry reusable for a fresh parse.
func (r *registry) resetSelection() {
	r.selected = nil
	r.each(func(arg Arg) bool {
		if cmd, ok := arg.(*Command); ok {
			cmd.registry.resetSelection()
		}

		return true
	})
}
