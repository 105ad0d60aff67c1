package model

import (
	"sort"
	"strconv"
	"strings"
)

// LabelCount pairs a class label with a row count.
type LabelCount struct {
	Label string
	Count int
}

// NormalizeLabel trims surrounding whitespace from a raw label cell.
func NormalizeLabel(raw string) string {
	return strings.TrimSpace(raw)
}

// SortLabels orders labels numerically when all of them are numbers
// (so "10" follows "9") and lexicographically otherwise.
func SortLabels(labels []string) {
	numeric := true
	values := make(map[string]float64, len(labels))
	for _, l := range labels {
		v, err := strconv.ParseFloat(l, 64)
		if err != nil {
			numeric = false
			break
		}
		values[l] = v
	}

	if !numeric {
		sort.Strings(labels)
		return
	}

	sort.SliceStable(labels, func(i, j int) bool {
		vi, vj := values[labels[i]], values[labels[j]]
		if vi != vj {
			return vi < vj
		}
		return labels[i] < labels[j]
	})
}

// SortedCounts converts a count map into a slice ordered by SortLabels.
func SortedCounts(counts map[string]int) []LabelCount {
	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	SortLabels(labels)

	out := make([]LabelCount, len(labels))
	for i, l := range labels {
		out[i] = LabelCount{Label: l, Count: counts[l]}
	}
	return out
}
