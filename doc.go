// Package args provides command line argument parsing.
//
// It supports 4 kinds of arguments:
//
//	Flag - a valueless boolean argument ("-v", "--verbose")
//	Option - a named argument which consumes exactly one value ("--out dist" or "--out=dist")
//	Command - a bare-word verb owning its own nested arguments and sub-commands ("build")
//	Positional - a marker-less named argument which may consume one value
//
// Arguments are declared once, then Parse consumes the raw token list. Flags
// may be bundled behind a single marker character ("-ab"); only the last flag
// of such a combo may take a value. Unknown tokens fail parsing with
// near-miss suggestions when a declared name is close enough.
//
//	cmdLine, err := args.NewCmdLineWith(
//		args.WithCommand(build),
//		args.WithFlag(args.NewFlag("-q", false, "--quiet")),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := cmdLine.Parse(os.Args[1:]); err != nil {
//		cmdLine.PrintUsage(os.Stderr)
//		log.Fatal(err)
//	}
package args
