package args

// IsMisspelledName compares name against every declared name and alias and
// collects the near-misses, in declaration order and without duplicates. The
// subtree of the selected command contributes all of its names; unselected
// commands contribute only command names, since their flags were never in
// play. Returns true when at least one suggestion was found. Purely a
// diagnostic - it never influences normal matching.
func (c *CmdLine) IsMisspelledName(name string) (bool, []string) {
	var suggestions []string
	matched := false

	c.registry.each(func(arg Arg) bool {
		cmd, ok := arg.(*Command)
		switch {
		case ok && cmd == c.registry.selected:
			if cmd.SuggestNames(name, &suggestions) {
				matched = true
			}
		case ok:
			if cmd.suggestCommandNames(name, &suggestions) {
				matched = true
			}
		default:
			if arg.SuggestNames(name, &suggestions) {
				matched = true
			}
		}

		return true
	})

	return matched, suggestions
}

func (c *CmdLine) unknownArgument(word string) error {
	err := &UnknownArgumentError{Name: word}
	if ok, suggestions := c.IsMisspelledName(word); ok {
		err.Suggestions = suggestions
	}

	return err
}
