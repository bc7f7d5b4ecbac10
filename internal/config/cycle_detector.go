package config

import "sort"

// detectCycle returns the selectors participating in a combine reference cycle, or nil.
func detectCycle(selectors []Selector) []string {
	graph := make(map[string][]string, len(selectors))
	for _, sel := range selectors {
		graph[sel.Name] = sel.References()
	}

	visiting := make(map[string]bool, len(selectors))
	visited := make(map[string]bool, len(selectors))
	var stack []string

	var cycle []string
	var dfs func(string) bool
	dfs = func(node string) bool {
		visiting[node] = true
		stack = append(stack, node)

		for _, ref := range graph[node] {
			if visited[ref] {
				continue
			}
			if visiting[ref] {
				if idx := indexOf(stack, ref); idx >= 0 {
					cycle = append([]string{}, stack[idx:]...)
					cycle = append(cycle, ref)
				}
				return true
			}
			if dfs(ref) {
				return true
			}
		}

		visiting[node] = false
		visited[node] = true
		stack = stack[:len(stack)-1]
		return false
	}

	names := make([]string, 0, len(graph))
	for name := range graph {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if visited[name] {
			continue
		}
		if dfs(name) {
			break
		}
	}

	return cycle
}

func indexOf(slice []string, target string) int {
	for i, v := range slice {
		if v == target {
			return i
		}
	}
	return -1
}
