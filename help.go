package args

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ThePreviousOne/args-parser/util"
)

// PrintUsage pretty prints the declared arguments and the command tree to
// writer, wrapping description text to the terminal width.
func (c *CmdLine) PrintUsage(writer io.Writer) {
	width := util.TerminalWidth()
	_, _ = fmt.Fprintf(writer, "usage: %s\n\n", filepath.Base(os.Args[0]))

	hasCommands := false
	c.registry.each(func(arg Arg) bool {
		if arg.Type() == ArgTypeCommand {
			hasCommands = true
			return true
		}
		printArgUsage(writer, arg, 1, width)

		return true
	})

	if hasCommands {
		_, _ = fmt.Fprintf(writer, "\ncommands:\n")
		c.registry.each(func(arg Arg) bool {
			if cmd, ok := arg.(*Command); ok {
				printCommandUsage(writer, cmd, 1, width)
			}

			return true
		})
	}
}

func printArgUsage(writer io.Writer, arg Arg, level, width int) {
	indent := strings.Repeat("  ", level)
	line := indent + formatNamesString(allDeclaredNames(arg))
	if arg.IsRequired() {
		line += " (required)"
	}
	_, _ = fmt.Fprintln(writer, line)

	if description := arg.Description(); description != "" {
		printWrapped(writer, description, indent+"    ", width)
	}
}

func printCommandUsage(writer io.Writer, cmd *Command, level, width int) {
	indent := strings.Repeat("  ", level)
	_, _ = fmt.Fprintln(writer, indent+formatNamesString(allDeclaredNames(cmd)))
	if description := cmd.Description(); description != "" {
		printWrapped(writer, description, indent+"    ", width)
	}

	cmd.registry.each(func(arg Arg) bool {
		if child, ok := arg.(*Command); ok {
			printCommandUsage(writer, child, level+1, width)
		} else {
			printArgUsage(writer, arg, level+1, width)
		}

		return true
	})
}

// formatNamesString joins declared names for printing, "-o or --out".
func formatNamesString(names []string) string {
	return strings.Join(names, " or ")
}

func allDeclaredNames(arg Arg) []string {
	names := make([]string, 0, len(arg.Aliases())+1)
	names = append(names, arg.Name())
	names = append(names, arg.Aliases()...)

	return names
}

// printWrapped writes text under the given indent, breaking lines at word
// boundaries so they stay within width columns.
func printWrapped(writer io.Writer, text, indent string, width int) {
	limit := width - len(indent)
	if limit < 16 {
		limit = 16
	}

	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) > limit:
			_, _ = fmt.Fprintln(writer, indent+line)
			line = word
		default:
			line += " " + word
		}
	}
	if line != "" {
		_, _ = fmt.Fprintln(writer, indent+line)
	}
}
