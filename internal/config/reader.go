package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/log"
)

// ReadLines returns the raw lines of the rc file at path, creating it with
// the documented defaults when it is missing or empty.
func ReadLines(path string) ([]string, error) {
	info, err := os.Stat(path)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(path, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(path, lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

func initializeDefaults() []string {
	lines := []string{
		"# cmdtree configuration",
		"# Edit values below or use: config set <key> <value>",
	}

	section := ""
	for _, key := range domain.ConfigKeys {
		if key.Hidden {
			continue
		}
		if key.Section != section {
			section = key.Section
			lines = append(lines, "", "# "+section)
		}

		value := key.Default
		if fn, ok := Defaults[key.Name]; ok {
			value = fn()
		}
		if value == "" {
			lines = append(lines, "# "+key.Name+"=")
			continue
		}
		lines = append(lines, key.Name+"="+quote(value))
	}

	return lines
}
