// Package resolver loads a root config file and every file it transitively
// includes.
package resolver

import (
	"hotkeyc/internal/core/errors"
	"hotkeyc/internal/engine/graph"
	"log/slog"
	"path/filepath"
)

type Resolver struct {
	reader Reader
	policy *Policy
}

func NewResolver(reader Reader, policy *Policy) *Resolver {
	if reader == nil {
		reader = OSReader{}
	}
	return &Resolver{reader: reader, policy: policy}
}

// Closure is the set of files reachable from a root.
type Closure struct {
	// Units holds the root first, then includes in breadth first discovery
	// order. Each file appears once.
	Units []SourceUnit
	Graph *graph.Graph
}

// Paths lists the unit paths in closure order.
func (c *Closure) Paths() []string {
	paths := make([]string, 0, len(c.Units))
	for _, u := range c.Units {
		paths = append(paths, u.Path)
	}
	return paths
}

// Closure loads root and walks include directives with a worklist. Files are
// keyed by cleaned path, so an include cycle stops once every file has been
// loaded. The first load failure aborts the walk; no partial closure is
// returned.
func (r *Resolver) Closure(root string) (*Closure, error) {
	rootUnit, err := Load(r.reader, root)
	if err != nil {
		return nil, err
	}

	c := &Closure{Graph: graph.NewGraph()}
	visited := map[string]bool{key(root): true}
	c.Graph.AddFile(key(root))
	queue := []SourceUnit{rootUnit}

	for len(queue) > 0 {
		unit := queue[0]
		queue = queue[1:]
		c.Units = append(c.Units, unit)

		for _, include := range unit.Imports {
			c.Graph.AddInclude(key(unit.Path), key(include))
			if visited[key(include)] {
				continue
			}
			if !r.policy.Permits(include) {
				de := &errors.DomainError{
					Code:    errors.CodeValidationError,
					Message: "include rejected by import policy",
				}
				return nil, de.WithContext(errors.CtxInclude, include).WithContext(errors.CtxPath, unit.Path)
			}
			visited[key(include)] = true

			loaded, err := Load(r.reader, include)
			if err != nil {
				return nil, errors.AddContext(err, errors.CtxOperation, "include from "+unit.Path)
			}
			slog.Debug("loaded include", "path", include, "from", unit.Path, "imports", len(loaded.Imports))
			queue = append(queue, loaded)
		}
	}
	return c, nil
}

func key(path string) string {
	return filepath.Clean(path)
}
