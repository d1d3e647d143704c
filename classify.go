package args

// tokenKind is the three-way classification the engine applies to each word
// after "="-splitting.
type tokenKind int

const (
	// kindBareWord - looked up as a command or marker-less named argument.
	kindBareWord tokenKind = iota
	// kindLongArg - two leading marker characters, looked up by full name.
	kindLongArg
	// kindFlagCombo - one leading marker character followed by candidate
	// single-character flag names.
	kindFlagCombo
)

func (c *CmdLine) isPrefix(r rune) bool {
	for _, p := range c.prefixes {
		if r == p {
			return true
		}
	}

	return false
}

// classify maps a word to its token kind. A word whose remainder after a
// single marker contains another marker character is not a combo and falls
// through to bare-word lookup.
func (c *CmdLine) classify(word string) tokenKind {
	runes := []rune(word)
	if len(runes) < 2 || !c.isPrefix(runes[0]) {
		return kindBareWord
	}
	if c.isPrefix(runes[1]) {
		return kindLongArg
	}
	for _, r := range runes[2:] {
		if c.isPrefix(r) {
			return kindBareWord
		}
	}

	return kindFlagCombo
}
