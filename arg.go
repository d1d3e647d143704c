package args

import (
	"fmt"

	"github.com/ThePreviousOne/args-parser/parse"
	"github.com/ThePreviousOne/args-parser/util"
)

// Arg is the contract every argument declaration implements. Concrete kinds
// are Flag, Option, Command and Positional. Declarations are created during
// configuration and are not safe for concurrent parses.
type Arg interface {
	// Name returns the primary name as declared, markers included
	// ("-v", "--out", "build").
	Name() string
	// Aliases returns the alternate names, markers included.
	Aliases() []string
	// Description returns the help text shown by PrintUsage.
	Description() string
	// Type returns the argument kind.
	Type() ArgType
	// IsWithValue reports whether matching this argument consumes a value
	// token from the cursor.
	IsWithValue() bool
	// IsRequired reports whether the argument must be matched for parsing to
	// succeed.
	IsRequired() bool
	// IsDefined reports whether the argument was matched during the last
	// parse.
	IsDefined() bool
	// Matches reports whether name equals the primary name or an alias.
	Matches(name string) bool
	// Process consumes whatever value tokens the argument needs from the
	// cursor and records the match.
	Process(s parse.State) error
	// CheckBeforeParsing validates the declaration against the names already
	// seen in its scope, adding its own.
	CheckBeforeParsing(seen *SeenNames) error
	// CheckAfterParsing fails when the argument is required but was never
	// matched.
	CheckAfterParsing() error
	// SuggestNames appends declared names which are near-misses of candidate
	// to found, without duplicates, and reports whether any was appended.
	SuggestNames(candidate string, found *[]string) bool
}

// baseArg carries the declaration state shared by all argument kinds.
type baseArg struct {
	name        string
	aliases     []string
	description string
	required    bool
	defined     bool
}

func (b *baseArg) Name() string {
	return b.name
}

func (b *baseArg) Aliases() []string {
	return b.aliases
}

// Description returns the help text set with Describe.
func (b *baseArg) Description() string {
	return b.description
}

// Describe sets the help text shown by PrintUsage.
func (b *baseArg) Describe(text string) {
	b.description = text
}

func (b *baseArg) IsRequired() bool {
	return b.required
}

func (b *baseArg) IsDefined() bool {
	return b.defined
}

func (b *baseArg) Matches(name string) bool {
	if name == b.name {
		return true
	}

	return util.Contains(b.aliases, name)
}

func (b *baseArg) CheckBeforeParsing(seen *SeenNames) error {
	for _, name := range b.allNames() {
		if err := seen.add(name); err != nil {
			return err
		}
	}

	return nil
}

func (b *baseArg) CheckAfterParsing() error {
	if b.required && !b.defined {
		return fmt.Errorf("%w: %q", ErrRequiredArgument, b.name)
	}

	return nil
}

func (b *baseArg) SuggestNames(candidate string, found *[]string) bool {
	matched := false
	for _, name := range b.allNames() {
		if util.IsSimilar(candidate, name) && !util.Contains(*found, name) {
			*found = append(*found, name)
			matched = true
		}
	}

	return matched
}

func (b *baseArg) allNames() []string {
	names := make([]string, 0, len(b.aliases)+1)
	names = append(names, b.name)
	names = append(names, b.aliases...)

	return names
}
