package args

import (
	"os"
	"strconv"
	"strings"
)

// SetEnvPrefix enables environment-supplied defaults: before parsing, every
// top-level flag or option whose derived variable (prefix + "_" + converted
// name) is set contributes tokens ahead of the user's tokens, so explicit
// tokens always win.
func (c *CmdLine) SetEnvPrefix(prefix string) {
	c.envPrefix = prefix
}

// SetEnvNameConverter replaces the flag-name-to-variable-name conversion,
// which defaults to SCREAMING_SNAKE of the name with markers stripped.
func (c *CmdLine) SetEnvNameConverter(converter NameConversionFunc) {
	if converter != nil {
		c.envNameConverter = converter
	}
}

func (c *CmdLine) envName(flagName string) string {
	converter := c.envNameConverter
	if converter == nil {
		converter = DefaultEnvNameConverter
	}
	stripped := strings.TrimLeftFunc(flagName, c.isPrefix)

	return c.envPrefix + "_" + converter(stripped)
}

// envTokens builds the tokens contributed by the environment. Options become
// "--name=value"; flags are emitted when their variable holds a true value.
func (c *CmdLine) envTokens() []string {
	if c.envPrefix == "" {
		return nil
	}

	var tokens []string
	c.registry.each(func(arg Arg) bool {
		value, found := os.LookupEnv(c.envName(arg.Name()))
		if !found || value == "" {
			return true
		}

		switch arg.Type() {
		case ArgTypeOption:
			tokens = append(tokens, arg.Name()+"="+value)
		case ArgTypeFlag:
			if on, err := strconv.ParseBool(value); err == nil && on {
				tokens = append(tokens, arg.Name())
			}
		case ArgTypeCommand, ArgTypePositional:
			// bare words never come from the environment
		}

		return true
	})

	return tokens
}
