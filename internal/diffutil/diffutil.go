// Package diffutil renders a minimal line diff used by `lumos generate
// --diff` and `lumos check` to show how generated files would change.
package diffutil

import "strings"

// Lines computes a line-based diff between old and new content. Unchanged
// lines are prefixed with two spaces, removals with "- " and additions with
// "+ ".
func Lines(oldText, newText string) []string {
	oldLines := splitLines(oldText)
	newLines := splitLines(newText)

	// longest common subsequence over lines
	m, n := len(oldLines), len(newLines)
	lcs := make([][]int, m+1)
	for i := range lcs {
		lcs[i] = make([]int, n+1)
	}
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var out []string
	i, j := 0, 0
	for i < m && j < n {
		switch {
		case oldLines[i] == newLines[j]:
			out = append(out, "  "+oldLines[i])
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			out = append(out, "- "+oldLines[i])
			i++
		default:
			out = append(out, "+ "+newLines[j])
			j++
		}
	}
	for ; i < m; i++ {
		out = append(out, "- "+oldLines[i])
	}
	for ; j < n; j++ {
		out = append(out, "+ "+newLines[j])
	}
	return out
}

// Changed filters a diff down to its removals and additions.
func Changed(diff []string) []string {
	var out []string
	for _, line := range diff {
		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "+ ") {
			out = append(out, line)
		}
	}
	return out
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
