package args

import "github.com/ThePreviousOne/args-parser/parse"

// Flag is a valueless boolean argument. Matching it records the fact it was
// seen; it never consumes value tokens.
type Flag struct {
	baseArg
}

// NewFlag declares a flag under its primary name and optional aliases, marker
// characters included, e.g. NewFlag("-v", false, "--verbose").
func NewFlag(name string, required bool, aliases ...string) *Flag {
	return &Flag{
		baseArg: baseArg{
			name:     name,
			aliases:  aliases,
			required: required,
		},
	}
}

func (f *Flag) Type() ArgType {
	return ArgTypeFlag
}

func (f *Flag) IsWithValue() bool {
	return false
}

func (f *Flag) Process(_ parse.State) error {
	f.defined = true

	return nil
}
