package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// FlagDescriptor documents one host flag.
type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
}

// HostFlags are the flags cmdtree itself understands. Anything else that
// starts with '-' is ignored.
var HostFlags = []FlagDescriptor{
	{
		Names:       []string{"--help", "-h"},
		Description: "Show help",
	},
	{
		Names:       []string{"--no-color"},
		Description: "Disable colored output",
	},
	{
		Names:       []string{"--log-level"},
		ValueHint:   "<level>",
		Description: "Log level for this run (debug, info, warn, error)",
	},
	{
		Names:       []string{"--as"},
		ValueHint:   "<kind>",
		Description: "Run as an interactive or noninteractive actor",
	},
	{
		Names:       []string{"--config"},
		ValueHint:   "<path>",
		Description: "Read configuration from path",
	},
	{
		Names:       []string{"--completion-script"},
		ValueHint:   "<shell>",
		Description: "Print the completion script for bash, zsh or fish",
	},
}

// FlagsUsage renders HostFlags as aligned help lines.
func FlagsUsage() []string {
	labels := make([]string, len(HostFlags))
	width := 0
	for i, f := range HostFlags {
		label := strings.Join(f.Names, ", ")
		if f.ValueHint != "" {
			label += "=" + f.ValueHint
		}
		labels[i] = label
		width = max(width, len(label))
	}

	lines := make([]string, len(HostFlags))
	for i, f := range HostFlags {
		lines[i] = fmt.Sprintf("  %-*s  %s", width, labels[i], f.Description)
	}
	return lines
}

// ParsedFlags provides typed access to command-line flags.
type ParsedFlags struct {
	raw []string
}

func NewParsedFlags(flags []string) *ParsedFlags {
	return &ParsedFlags{raw: flags}
}

// Raw returns the underlying flag strings.
func (f *ParsedFlags) Raw() []string {
	return f.raw
}

// Has returns true if the flag is present (for boolean flags).
func (f *ParsedFlags) Has(name string) bool {
	return slices.Contains(f.raw, name)
}

// String returns the value of a --flag=value flag, or defaultVal if not
// present. The last occurrence wins.
func (f *ParsedFlags) String(name, defaultVal string) string {
	prefix := name + "="
	value, found := defaultVal, false
	for _, flag := range f.raw {
		if v, ok := strings.CutPrefix(flag, prefix); ok {
			value, found = v, true
		}
	}
	if !found {
		return defaultVal
	}
	return value
}

// Int returns the integer value of a flag, or defaultVal if not present or invalid.
func (f *ParsedFlags) Int(name string, defaultVal int) int {
	str := f.String(name, "")
	if str == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}
	return n
}

// SplitArgs separates flags from the command words. Negative numbers are
// words, and a lone "--" ends flag parsing, so `cmdtree echo -- -x` echoes
// "-x".
func SplitArgs(args []string) (flags, commands []string) {
	for i, a := range args {
		if a == "--" {
			commands = append(commands, args[i+1:]...)
			break
		}
		if isFlag(a) {
			flags = append(flags, a)
			continue
		}
		commands = append(commands, a)
	}
	return flags, commands
}

func isFlag(arg string) bool {
	if !strings.HasPrefix(arg, "-") || arg == "-" {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err != nil
}
