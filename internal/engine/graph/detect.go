package graph

// DetectCycles returns every include cycle found by a depth first walk from
// each file in insertion order. A file including itself is a cycle of one.
// The walk keeps an explicit stack so deep include chains cannot overflow.
func (g *Graph) DetectCycles() [][]string {
	var cycles [][]string
	visited := make(map[string]bool)
	onStack := make(map[string]bool)

	type frame struct {
		file string
		next int
	}

	for _, start := range g.files {
		if visited[start] {
			continue
		}
		visited[start] = true
		onStack[start] = true
		stack := []frame{{file: start}}
		path := []string{start}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			targets := g.includes[top.file]
			if top.next >= len(targets) {
				onStack[top.file] = false
				stack = stack[:len(stack)-1]
				path = path[:len(path)-1]
				continue
			}
			next := targets[top.next]
			top.next++

			if onStack[next] {
				for i, f := range path {
					if f == next {
						cycle := make([]string, len(path)-i)
						copy(cycle, path[i:])
						cycles = append(cycles, cycle)
						break
					}
				}
				continue
			}
			if visited[next] {
				continue
			}
			visited[next] = true
			onStack[next] = true
			stack = append(stack, frame{file: next})
			path = append(path, next)
		}
	}
	return cycles
}

// FindIncludeChain returns the shortest include path from one file to
// another.
func (g *Graph) FindIncludeChain(from, to string) ([]string, bool) {
	if !g.known[from] || !g.known[to] {
		return nil, false
	}
	if from == to {
		return []string{from}, true
	}

	queue := []string{from}
	visited := map[string]bool{from: true}
	prev := make(map[string]string)

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, next := range g.includes[curr] {
			if visited[next] {
				continue
			}
			visited[next] = true
			prev[next] = curr

			if next == to {
				path := []string{to}
				for node := to; node != from; {
					p := prev[node]
					path = append(path, p)
					node = p
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path, true
			}

			queue = append(queue, next)
		}
	}

	return nil, false
}
