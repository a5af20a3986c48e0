// Package graphfile reads dependency graphs from the JSON exchange format
// produced by the graph-extraction collaborator (one document per
// repository+commit). depwatch never parses manifests or lockfiles; this
// file format is its own input contract.
package graphfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"

	"github.com/rios0rios0/depwatch/internal/domain/analysis"
	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

// GraphRepository loads dependency graph exports from disk.
type GraphRepository struct{}

// NewGraphRepository creates a new file-backed graph repository.
func NewGraphRepository() *GraphRepository {
	return &GraphRepository{}
}

// graphDocument is the wire form of a graph export. Versions stay strings
// until parsed, so a malformed entry can be reported with its coordinates.
type graphDocument struct {
	Repository   string            `json:"repository"`
	Commit       string            `json:"commit"`
	Dependencies []dependencyEntry `json:"dependencies"`
}

type dependencyEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Source  string `json:"source"`
	Direct  bool   `json:"direct"`
	Dev     bool   `json:"dev"`
}

// GetGraph reads and validates the graph export at the given path.
func (it *GraphRepository) GetGraph(
	_ context.Context,
	source string,
) (*entities.DependencyGraph, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph export %q: %w", source, err)
	}

	var document graphDocument
	if unmarshalErr := json.Unmarshal(data, &document); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse graph export %q: %w", source, unmarshalErr)
	}

	graph := &entities.DependencyGraph{
		Repository:   document.Repository,
		Commit:       document.Commit,
		Dependencies: make([]entities.DependencyRecord, 0, len(document.Dependencies)),
	}

	for _, entry := range document.Dependencies {
		version, parseErr := semver.NewVersion(entry.Version)
		if parseErr != nil {
			return nil, &analysis.MalformedGraphError{
				Reason: fmt.Sprintf("invalid version %q", entry.Version),
				Key:    entities.DependencyKey{Name: entry.Name},
			}
		}
		graph.Dependencies = append(graph.Dependencies, entities.DependencyRecord{
			Name:    entry.Name,
			Version: version,
			Source:  entry.Source,
			Direct:  entry.Direct,
			Dev:     entry.Dev,
		})
	}

	return graph, nil
}
