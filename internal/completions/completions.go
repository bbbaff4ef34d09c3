// Package completions lets shells complete cmdtree command lines by
// calling back into the binary.
package completions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Command is the hidden word that asks the binary for candidates.
const Command = "__complete"

type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ParseShell returns the shell named s.
func ParseShell(s string) (Shell, error) {
	switch sh := Shell(strings.ToLower(strings.TrimSpace(s))); sh {
	case ShellBash, ShellZsh, ShellFish:
		return sh, nil
	default:
		return "", fmt.Errorf("unsupported shell: %s", s)
	}
}

// BinaryName returns the name the running binary was invoked as.
func BinaryName() string {
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Base(exe)
	}
	if len(os.Args) > 0 && os.Args[0] != "" {
		return filepath.Base(os.Args[0])
	}
	return "cmdtree"
}

// Line joins shell words back into a console line. Words holding spaces
// are quoted; an empty last word leaves a trailing space, so the word
// being completed stays empty.
func Line(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		if strings.ContainsAny(w, " \t") {
			w = `"` + w + `"`
		}
		quoted[i] = w
	}
	return strings.Join(quoted, " ")
}

// SourceInstructions returns the line to add to the shell's rc file.
func SourceInstructions(shell Shell, bin string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s --completion-script=%s)"`, bin, shell)
	case ShellFish:
		return fmt.Sprintf(`%s --completion-script=fish | source`, bin)
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell.
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}
