package chart

import (
	"fmt"
	"sort"
	"strings"
)

// GeneratePie produces a Mermaid pie chart from a histogram.
// Slices are ordered by key so the output is deterministic.
func GeneratePie(title string, counts map[string]int) string {
	var sb strings.Builder
	sb.WriteString("pie showData\n")
	if title != "" {
		fmt.Fprintf(&sb, "    title %s\n", sanitizeLabel(title))
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(&sb, "    \"%s\" : %d\n", sanitizeLabel(k), counts[k])
	}
	return sb.String()
}

// sanitizeLabel strips characters that break Mermaid's quoted labels.
func sanitizeLabel(s string) string {
	r := strings.NewReplacer("\"", "'", "\n", " ", "\r", " ")
	return r.Replace(s)
}
