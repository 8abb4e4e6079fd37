package filesystem

import (
	"bufio"
	"bytes"
	"os"

	"github.com/spf13/afero"
)

// NewOS returns the real filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// IsFile reports whether path exists and is not a directory.
func IsFile(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadLines reads a text file and returns its lines without trailing
// newlines or carriage returns. Blank lines are kept.
func ReadLines(fs afero.Fs, path string) ([]string, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &os.PathError{Op: "read", Path: path, Err: os.ErrInvalid}
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, string(bytes.TrimRight(scanner.Bytes(), "\r")))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
