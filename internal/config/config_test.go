package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rcPath(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".cmdtreerc")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	}
	return path
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantLines []string
	}{
		{
			name:      "single line",
			content:   "key=value\n",
			wantLines: []string{"key=value"},
		},
		{
			name:      "lines with comments",
			content:   "# Comment\nkey=value\n",
			wantLines: []string{"# Comment", "key=value"},
		},
		{
			name:      "Windows CRLF line endings",
			content:   "key1=value1\r\nkey2=value2\r\n",
			wantLines: []string{"key1=value1", "key2=value2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := rcPath(t, tt.content)

			got, err := ReadLines(path)
			require.NoError(t, err)
			require.Equal(t, tt.wantLines, got)

			info, err := os.Stat(path)
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0600), info.Mode().Perm())
		})
	}
}

func TestReadLines_CreatesFileWithDefaults(t *testing.T) {
	path := rcPath(t, "")

	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.Contains(t, lines, "log_level=warn")
	require.Contains(t, lines, `permissions=*`)
	require.Contains(t, lines, "# manifest=")

	cfg, err := Parse(lines)
	require.NoError(t, err)
	require.Equal(t, "true", cfg["audit_enabled"])

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), "# cmdtree configuration\n"))
}

func TestWriteLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{name: "empty lines", lines: []string{}},
		{name: "single line", lines: []string{"key=value"}},
		{name: "lines with comments", lines: []string{"# Comment", "key=value", "# Another comment"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := rcPath(t, "")

			require.NoError(t, WriteLines(path, tt.lines))

			content, err := os.ReadFile(path)
			require.NoError(t, err)

			var expected strings.Builder
			for _, line := range tt.lines {
				expected.WriteString(line + "\n")
			}
			require.Equal(t, expected.String(), string(content))

			info, err := os.Stat(path)
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0600), info.Mode().Perm())
		})
	}
}

func TestWriteLines_LeavesNoTempFiles(t *testing.T) {
	path := rcPath(t, "")
	require.NoError(t, WriteLines(path, []string{"a=1"}))
	require.NoError(t, WriteLines(path, []string{"b=2"}))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "b=2\n", string(content))
}

func TestSet(t *testing.T) {
	tests := []struct {
		name         string
		initialLines []string
		key          string
		value        string
		wantLines    []string
		wantUpdated  bool
	}{
		{
			name:         "add to empty",
			initialLines: []string{},
			key:          "key",
			value:        "value",
			wantLines:    []string{"key=value"},
		},
		{
			name:         "update existing key",
			initialLines: []string{"key1=value1", "key2=value2"},
			key:          "key1",
			value:        "newvalue",
			wantLines:    []string{"key1=newvalue", "key2=value2"},
			wantUpdated:  true,
		},
		{
			name:         "preserves comments and blank lines",
			initialLines: []string{"# Comment", "", "key1=value1"},
			key:          "key2",
			value:        "value2",
			wantLines:    []string{"# Comment", "", "key1=value1", "key2=value2"},
		},
		{
			name:         "preserves trailing comment",
			initialLines: []string{"log_level=warn # noisy otherwise"},
			key:          "log_level",
			value:        "debug",
			wantLines:    []string{"log_level=debug # noisy otherwise"},
			wantUpdated:  true,
		},
		{
			name:         "hash inside value is not a comment",
			initialLines: []string{"special=a#b"},
			key:          "special",
			value:        "c",
			wantLines:    []string{"special=c"},
			wantUpdated:  true,
		},
		{
			name:         "quotes values with spaces",
			initialLines: nil,
			key:          "manifest",
			value:        "/tmp/my commands.yml",
			wantLines:    []string{`manifest="/tmp/my commands.yml"`},
		},
		{
			name:         "handles whitespace in existing line",
			initialLines: []string{"  key1  =  value1  "},
			key:          "key1",
			value:        "newvalue",
			wantLines:    []string{"key1=newvalue"},
			wantUpdated:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, updated := Set(tt.initialLines, tt.key, tt.value)
			require.Equal(t, tt.wantLines, got)
			require.Equal(t, tt.wantUpdated, updated)
		})
	}
}

func TestUnset(t *testing.T) {
	tests := []struct {
		name         string
		initialLines []string
		key          string
		wantLines    []string
		wantRemoved  bool
	}{
		{
			name:         "remove from empty",
			initialLines: []string{},
			key:          "key",
			wantLines:    nil,
		},
		{
			name:         "remove existing key",
			initialLines: []string{"key1=value1", "key2=value2"},
			key:          "key1",
			wantLines:    []string{"key2=value2"},
			wantRemoved:  true,
		},
		{
			name:         "remove non-existent key",
			initialLines: []string{"key1=value1"},
			key:          "key2",
			wantLines:    []string{"key1=value1"},
		},
		{
			name:         "removes duplicates and keeps comments",
			initialLines: []string{"# Comment", "", "key1=a", "key2=b", "key1=c"},
			key:          "key1",
			wantLines:    []string{"# Comment", "", "key2=b"},
			wantRemoved:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, removed := Unset(tt.initialLines, tt.key)
			require.Equal(t, tt.wantLines, got)
			require.Equal(t, tt.wantRemoved, removed)
		})
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		key       string
		wantValue string
		wantFound bool
	}{
		{name: "value from file", content: "log_level=error\n", key: "log_level", wantValue: "error", wantFound: true},
		{name: "default when not in file", content: "color=never\n", key: "log_level", wantValue: "warn", wantFound: true},
		{name: "custom key in file", content: "custom=x\n", key: "custom", wantValue: "x", wantFound: true},
		{name: "unknown key", content: "color=never\n", key: "nonexistent", wantFound: false},
		{name: "broken file falls back to default", content: "garbage\n", key: "actor_kind", wantValue: "interactive", wantFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, found := Get(rcPath(t, tt.content), tt.key)
			require.Equal(t, tt.wantFound, found)
			require.Equal(t, tt.wantValue, value)
		})
	}
}

func TestGetAll_MergesCorrectly(t *testing.T) {
	path := rcPath(t, "log_level=debug\nmy_custom=1\n")

	got, err := GetAll(path)
	require.NoError(t, err)

	require.Len(t, got, len(Defaults)+1)
	require.Equal(t, "debug", got["log_level"])
	require.Equal(t, "1", got["my_custom"])
	require.Equal(t, "true", got["log_enabled"])
}

func TestProvider_SetUnset(t *testing.T) {
	path := rcPath(t, "# mine\nlog_level=warn\n")
	p := NewProvider(path)
	require.Equal(t, path, p.Path())

	require.NoError(t, p.Set("log_level", "debug"))
	require.NoError(t, p.Set("color", "never"))

	value, ok := p.Get("log_level")
	require.True(t, ok)
	require.Equal(t, "debug", value)

	require.NoError(t, p.Unset("color"))
	value, _ = p.Get("color")
	require.Equal(t, "auto", value)

	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.Equal(t, []string{"# mine", "log_level=debug"}, lines)

	_, err = os.Stat(path + ".lock")
	require.True(t, os.IsNotExist(err))
}

func TestWithLock_Timeout(t *testing.T) {
	path := rcPath(t, "")
	lockPath := path + ".lock"
	require.NoError(t, os.WriteFile(lockPath, []byte("1"), 0600))

	f, err := acquireLock(lockPath, 0)
	require.ErrorIs(t, err, ErrLockTimeout)
	require.Nil(t, f)
}
