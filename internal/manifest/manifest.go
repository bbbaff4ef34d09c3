// Package manifest reads the YAML file declaring which top-level commands a
// host accepts, in the spirit of a plugin descriptor.
package manifest

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed commands.yml
var builtin []byte

// Command is one declared top-level command.
type Command struct {
	Name        string   `yaml:"-"`
	Description string   `yaml:"description"`
	Aliases     []string `yaml:"aliases"`
	Permission  string   `yaml:"permission"`
}

// Manifest is the parsed declaration file.
type Manifest struct {
	commands map[string]Command
	aliases  map[string]string
}

type manifestFile struct {
	Commands map[string]Command `yaml:"commands"`
}

// Builtin returns the manifest shipped with the binary.
func Builtin() *Manifest {
	m, err := Parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("manifest: builtin: %v", err))
	}
	return m
}

// Load reads the manifest at path. An empty path yields Builtin.
func Load(path string) (*Manifest, error) {
	if path == "" {
		return Builtin(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest: %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest document. Names and aliases are lower-cased; an
// alias may not shadow another command or alias.
func Parse(data []byte) (*Manifest, error) {
	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(file.Commands) == 0 {
		return nil, errors.New("no commands declared")
	}

	m := &Manifest{
		commands: make(map[string]Command, len(file.Commands)),
		aliases:  make(map[string]string),
	}

	for name, cmd := range file.Commands {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || strings.ContainsAny(name, " \t") {
			return nil, fmt.Errorf("invalid command name %q", name)
		}
		if _, dup := m.commands[name]; dup {
			return nil, fmt.Errorf("command %q declared twice", name)
		}
		cmd.Name = name
		m.commands[name] = cmd
	}

	for _, name := range m.Names() {
		cmd := m.commands[name]
		for i, alias := range cmd.Aliases {
			alias = strings.ToLower(strings.TrimSpace(alias))
			if _, taken := m.commands[alias]; taken {
				return nil, fmt.Errorf("alias %q of %q shadows a command", alias, name)
			}
			if owner, taken := m.aliases[alias]; taken {
				return nil, fmt.Errorf("alias %q declared by %q and %q", alias, owner, name)
			}
			m.aliases[alias] = name
			cmd.Aliases[i] = alias
		}
	}

	return m, nil
}

// Names returns the declared command names, sorted.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.commands))
	for name := range m.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Declares reports whether name is a declared command (not an alias).
func (m *Manifest) Declares(name string) bool {
	_, ok := m.commands[strings.ToLower(name)]
	return ok
}

// Lookup finds a command by name or alias, case-insensitively.
func (m *Manifest) Lookup(label string) (Command, bool) {
	label = strings.ToLower(label)
	if cmd, ok := m.commands[label]; ok {
		return cmd, true
	}
	if name, ok := m.aliases[label]; ok {
		return m.commands[name], true
	}
	return Command{}, false
}
