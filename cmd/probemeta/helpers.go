// Shared helpers for probemeta CLI commands.
package main

import (
	"fmt"
	"os"

	"github.com/neuroforge/probemeta/internal/load"
	"github.com/neuroforge/probemeta/internal/yamldoc"
	"github.com/neuroforge/probemeta/pkg/types"
)

// loadRecordFile reads a YAML metadata document and loads it into a record.
func loadRecordFile(path string) (*types.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	doc, err := yamldoc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	rec, err := load.Load(doc)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return rec, nil
}
