package dispatchers

import (
	"sort"
	"strings"
)

const maxSuggestionDistance = 3

// levenshtein calculates the edit distance between two strings
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

type suggestion struct {
	name     string
	distance int
}

// similarNames returns up to maxResults of names close to input, nearest
// first. Exact matches are left out.
func similarNames(input string, names []string, maxResults int) []string {
	return nearest(names, maxResults, func(name string) (int, bool) {
		dist := levenshtein(input, name)
		return dist, dist <= maxSuggestionDistance && dist > 0
	})
}

// similarPaths is similarNames over command paths from CollectAllCommands.
// Top-level paths match the same way; a nested path matches only when its
// last word is input, so "list" at the root finds "config list".
func similarPaths(input string, paths []string, maxResults int) []string {
	return nearest(paths, maxResults, func(path string) (int, bool) {
		i := strings.LastIndexByte(path, ' ')
		if i < 0 {
			dist := levenshtein(input, path)
			return dist, dist <= maxSuggestionDistance && dist > 0
		}
		return 0, strings.EqualFold(input, path[i+1:])
	})
}

func nearest(candidates []string, maxResults int, score func(string) (int, bool)) []string {
	var suggestions []suggestion

	for _, c := range candidates {
		if dist, ok := score(c); ok {
			suggestions = append(suggestions, suggestion{name: c, distance: dist})
		}
	}

	// Sort by distance (ascending), then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}

// FindSimilarCommands finds children of node whose names are close to input.
func FindSimilarCommands(input string, node *ParentCommand, maxResults int) []string {
	if node == nil {
		return nil
	}

	names := make([]string, 0, len(node.children))
	for _, child := range node.children {
		names = append(names, child.Name())
	}
	return similarNames(input, names, maxResults)
}

// CollectAllCommands recursively collects the space-separated paths of every
// command below node, node itself included.
func CollectAllCommands(node Node, prefix string) []string {
	if node == nil {
		return nil
	}

	fullPath := node.Name()
	if prefix != "" {
		fullPath = prefix + " " + node.Name()
	}
	commands := []string{fullPath}

	if parent, ok := node.(*ParentCommand); ok {
		for _, child := range parent.children {
			commands = append(commands, CollectAllCommands(child, fullPath)...)
		}
	}

	return commands
}
