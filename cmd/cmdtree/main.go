package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/footprint-tools/cmdtree/internal/app"
	"github.com/footprint-tools/cmdtree/internal/cli"
	"github.com/footprint-tools/cmdtree/internal/completions"
	"github.com/footprint-tools/cmdtree/internal/console"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command when args name one, and otherwise reads
// commands from stdin: through the prompt on a terminal, line by line
// from a pipe.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rawFlags, commands := cli.SplitArgs(args)
	flags := cli.NewParsedFlags(rawFlags)

	if flags.Has("--help") || flags.Has("-h") {
		printHelp(stdout)
		return 0
	}

	if name := flags.String("--completion-script", ""); name != "" {
		return printScript(name, stdout, stderr)
	}

	c, err := app.New(app.Options{
		ConfigPath: flags.String("--config", ""),
		LogLevel:   flags.String("--log-level", ""),
		ActorKind:  flags.String("--as", ""),
		NoColor:    flags.Has("--no-color"),
		IsTTY:      isTerminal(stdout),
		Out:        stdout,
	})
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	defer func() { _ = app.Close(c.Application) }()

	if len(commands) > 0 && commands[0] == completions.Command {
		for _, candidate := range c.Session.Complete(completions.Line(commands[1:])) {
			fmt.Fprintln(stdout, candidate)
		}
		return 0
	}

	if len(commands) > 0 {
		label := strings.TrimPrefix(commands[0], "/")
		if !c.Session.Run(label, commands[1:]) {
			return 1
		}
		return 0
	}

	if isTerminal(stdin) && isTerminal(stdout) {
		if err := console.RunInteractive(c.Session, c.Actor, c.Styler); err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		return 0
	}

	failures, err := console.RunLines(c.Session, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	if failures > 0 {
		return 1
	}
	return 0
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: cmdtree [flags] [command [args...]]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command, cmdtree reads commands from stdin. On a terminal it")
	fmt.Fprintln(w, "opens a prompt with tab completion; run 'help' there to list commands.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	for _, line := range cli.FlagsUsage() {
		fmt.Fprintln(w, line)
	}
}

func printScript(name string, stdout, stderr io.Writer) int {
	shell, err := completions.ParseShell(name)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	bin := completions.BinaryName()
	script, err := completions.Script(shell, bin)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	fmt.Fprint(stdout, script)
	fmt.Fprintf(stdout, "# Load with: %s (in %s)\n", completions.SourceInstructions(shell, bin), completions.RcFile(shell))
	return 0
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
