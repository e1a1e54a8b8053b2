package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"no terminator", "abc", []string{"abc"}},
		{"trailing newline", "abc\n", []string{"abc"}},
		{"blank lines", "a\n\n\nb\n", []string{"a", "", "", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr", "a\rb", []string{"a", "b"}},
		{"only newline", "\n", []string{""}},
		{"keeps whitespace", "  a \t\n", []string{"  a \t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.input))
		})
	}
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("a  bb ccc\n   it has three lines\n\n\nACCURATE\n"), 0644))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a  bb ccc", "   it has three lines", "", "", "ACCURATE"}, lines)
}

func TestReadLines_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestReadLines_Missing(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadLines_Directory(t *testing.T) {
	_, err := ReadLines(t.TempDir())
	assert.Error(t, err)
}
