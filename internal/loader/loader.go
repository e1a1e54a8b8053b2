package loader

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// ReadLines maps the file at path into memory and splits it into lines.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	// mmap rejects zero-length mappings.
	if stat.Size() == 0 {
		return []string{}, nil
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to mmap %s: %w", path, err)
	}
	defer data.Unmap()

	return splitLines(data), nil
}

// SplitLines splits in-memory text the same way ReadLines splits a file.
func SplitLines(text string) []string {
	return splitLines([]byte(text))
}

// splitLines cuts data at "\n", "\r\n" and "\r". A terminator at the very end
// does not start another line. The returned strings are copies, so data may be
// unmapped afterwards.
func splitLines(data []byte) []string {
	lines := []string{}
	start := 0
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			lines = append(lines, string(data[start:i]))
			start = i + 1
		case '\r':
			lines = append(lines, string(data[start:i]))
			if i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, string(data[start:]))
	}
	return lines
}
