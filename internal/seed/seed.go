// Package seed loads the initial rows of a table view. Rows are read once
// when the view opens and never written back.
package seed

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed data/*.json
var builtin embed.FS

// Load reads a JSON array of rows from path. A missing file is an empty table.
func Load[R any](path string) ([]R, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []R{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return decode[R](b)
}

// Default returns the built-in rows for a shape.
func Default[R any](shape string) ([]R, error) {
	b, err := builtin.ReadFile("data/" + shape + ".json")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []R{}, nil
		}
		return nil, fmt.Errorf("read builtin %s: %w", shape, err)
	}
	return decode[R](b)
}

// Resolve loads path when set, otherwise the built-in rows for shape.
func Resolve[R any](shape, path string) ([]R, error) {
	if path == "" {
		return Default[R](shape)
	}
	return Load[R](path)
}

func decode[R any](b []byte) ([]R, error) {
	var rows []R
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if rows == nil {
		rows = []R{}
	}
	return rows, nil
}
