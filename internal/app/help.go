package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/agext/levenshtein"
)

const helpText = `Use "run" or "build" along with vmmake
   run   - will build the project then run it
   build - will build the project
`

// suggestDistance is the largest edit distance still worth a hint.
const suggestDistance = 2

// PrintHelp writes the help text for an unrecognised arg to w, preceded by
// a suggestion when arg is close to a subcommand. It needs no App, so the
// help path works whatever state the settings or toolchain file are in.
func PrintHelp(w io.Writer, arg string) {
	if s := suggest(arg); s != "" {
		fmt.Fprintf(w, "Unknown subcommand %q. Did you mean %q?\n", arg, s)
	}
	fmt.Fprint(w, helpText)
}

// suggest returns the subcommand closest to arg, ignoring case, or "" when
// none is close enough.
func suggest(arg string) string {
	lower := strings.ToLower(strings.TrimSpace(arg))
	if lower == "" {
		return ""
	}
	best, bestDist := "", suggestDistance+1
	for _, name := range []string{CmdBuild, CmdRun} {
		if d := levenshtein.Distance(lower, name, nil); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}
