// Package graph tracks which config files include which.
package graph

// Graph is a directed include graph. Files and edges keep insertion order
// so every traversal is deterministic.
type Graph struct {
	files      []string
	known      map[string]bool
	includes   map[string][]string        // from -> to, in discovery order
	includedBy map[string]map[string]bool // to -> from
}

func NewGraph() *Graph {
	return &Graph{
		known:      make(map[string]bool),
		includes:   make(map[string][]string),
		includedBy: make(map[string]map[string]bool),
	}
}

func (g *Graph) AddFile(path string) {
	if g.known[path] {
		return
	}
	g.known[path] = true
	g.files = append(g.files, path)
}

// AddInclude records that from includes to. Both ends become files.
// Repeated edges are ignored.
func (g *Graph) AddInclude(from, to string) {
	g.AddFile(from)
	g.AddFile(to)
	if g.includedBy[to] == nil {
		g.includedBy[to] = make(map[string]bool)
	}
	if g.includedBy[to][from] {
		return
	}
	g.includedBy[to][from] = true
	g.includes[from] = append(g.includes[from], to)
}

func (g *Graph) Files() []string {
	return append([]string(nil), g.files...)
}

func (g *Graph) HasFile(path string) bool {
	return g.known[path]
}

func (g *Graph) Includes(path string) []string {
	return append([]string(nil), g.includes[path]...)
}

// IncludedBy returns the files including path, in file insertion order.
func (g *Graph) IncludedBy(path string) []string {
	var out []string
	for _, f := range g.files {
		if g.includedBy[path][f] {
			out = append(out, f)
		}
	}
	return out
}

func (g *Graph) EdgeCount() int {
	n := 0
	for _, to := range g.includes {
		n += len(to)
	}
	return n
}
