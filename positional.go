package args

import (
	"fmt"

	"github.com/ThePreviousOne/args-parser/parse"
)

// Positional is a bare-word named argument: it is matched when a token equals
// its name with no marker characters, and may consume one following value.
type Positional struct {
	baseArg
	withValue bool
	value     string
}

// NewPositional declares a marker-less named argument, e.g.
// NewPositional("install", true, false).
func NewPositional(name string, withValue, required bool, aliases ...string) *Positional {
	return &Positional{
		baseArg: baseArg{
			name:     name,
			aliases:  aliases,
			required: required,
		},
		withValue: withValue,
	}
}

func (p *Positional) Type() ArgType {
	return ArgTypePositional
}

func (p *Positional) IsWithValue() bool {
	return p.withValue
}

// Process records the match and consumes the value token when declared with
// one.
func (p *Positional) Process(s parse.State) error {
	if p.withValue {
		value, err := s.Next()
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMissingValue, p.name)
		}
		p.value = value
	}

	p.defined = true

	return nil
}

// Value returns the consumed value, empty when declared without one.
func (p *Positional) Value() string {
	return p.value
}
