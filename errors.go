package args

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilArgument - a nil declaration was passed to AddArg.
	ErrNilArgument = errors.New("attempt to add a nil argument to the command line")
	// ErrAlreadyRegistered - a declaration with the same primary name was
	// already added to the registry.
	ErrAlreadyRegistered = errors.New("argument already registered")
	// ErrDuplicateArgument - two declarations share a name or alias.
	ErrDuplicateArgument = errors.New("argument name defined more than once")
	// ErrUnknownArgument - a token matched no declared name.
	ErrUnknownArgument = errors.New("unknown argument")
	// ErrMultipleCommands - a second command token was encountered after one
	// was already selected in the same registry scope.
	ErrMultipleCommands = errors.New("only one command can be specified")
	// ErrOnlyLastFlagCanHaveValue - a value-bearing flag was found before the
	// last position of a flags combo.
	ErrOnlyLastFlagCanHaveValue = errors.New("only the last flag in a flags combo can take a value")
	// ErrMissingCommand - CommandIsRequired was set but no command selected.
	ErrMissingCommand = errors.New("no command was specified")
	// ErrRequiredArgument - a required argument was never matched.
	ErrRequiredArgument = errors.New("required argument was not specified")
	// ErrMissingValue - an argument expects a value but the input ended.
	ErrMissingValue = errors.New("argument requires a value")
)

// UnknownArgumentError is returned when a token matches no declared name. It
// carries the near-miss suggestions collected by the misspelling detector, in
// declaration order.
type UnknownArgumentError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownArgumentError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown argument %q", e.Name)
	}

	quoted := make([]string, len(e.Suggestions))
	for i, s := range e.Suggestions {
		quoted[i] = fmt.Sprintf("%q", s)
	}

	return fmt.Sprintf("unknown argument %q, probably you mean %s",
		e.Name, strings.Join(quoted, " or "))
}

func (e *UnknownArgumentError) Unwrap() error {
	return ErrUnknownArgument
}

// MultipleCommandsError is returned when a second command token is found in a
// registry scope which already selected one.
type MultipleCommandsError struct {
	First  string
	Second string
}

func (e *MultipleCommandsError) Error() string {
	return fmt.Sprintf("only one command can be specified, but you entered %q and %q",
		e.First, e.Second)
}

func (e *MultipleCommandsError) Unwrap() error {
	return ErrMultipleCommands
}

// DuplicateArgumentError is returned by the pre-parse correctness check when
// two declarations share a name or alias.
type DuplicateArgumentError struct {
	Name string
}

func (e *DuplicateArgumentError) Error() string {
	return fmt.Sprintf("argument name %q defined more than once", e.Name)
}

func (e *DuplicateArgumentError) Unwrap() error {
	return ErrDuplicateArgument
}
