// Package fileio provides filesystem side-effect helpers for JSON, text and
// CSV data.
package fileio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tenagusami-ms/exp/internal/types"
)

// PrepareDirectory creates dir and any missing parents.
func PrepareDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory %s: %v", types.ErrDataWrite, dir, err)
	}
	return nil
}

// ReadJSON reads the JSON file at path into v.
func ReadJSON(path string, v interface{}) error {
	data, err := ReadText(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("%w: failed to parse JSON file %s: %v", types.ErrDataRead, path, err)
	}
	return nil
}

// WriteJSON writes v as indented JSON to path, creating parent directories
// as needed. Refuses to write when path is an existing directory.
func WriteJSON(v interface{}, path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", types.ErrDataWrite, path)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal JSON for %s: %v", types.ErrDataWrite, path, err)
	}

	if err := PrepareDirectory(filepath.Dir(path)); err != nil {
		return err
	}
	return WriteText(string(data)+"\n", path)
}

// ReadText returns the contents of the text file at path.
func ReadText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: file %s does not exist", types.ErrDataRead, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read %s: %v", types.ErrDataRead, path, err)
	}
	return string(data), nil
}

// WriteText writes contents to the file at path, truncating any existing file.
func WriteText(contents, path string) error {
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %v", types.ErrDataWrite, path, err)
	}
	return nil
}

// ParseCSV parses CSV text into rows of whitespace-trimmed fields.
func ParseCSV(contents string) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(contents))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse CSV contents: %v", types.ErrDataRead, err)
	}
	for _, row := range records {
		for i, field := range row {
			row[i] = strings.TrimSpace(field)
		}
	}
	return records, nil
}
