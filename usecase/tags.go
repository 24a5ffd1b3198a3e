package usecase

import (
	"sort"
	"strings"
)

// NormalizeTags trims and lowercases every tag, dropping empties. Tags are
// always stored in this form.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.ToLower(strings.TrimSpace(tag)); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized
}

// SplitTagsParam turns the comma-separated tags query parameter into a
// normalized tag set.
func SplitTagsParam(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	return NormalizeTags(strings.Split(csv, ","))
}

// sortedDistinct collects the distinct tags across the given tag sets,
// sorted for the client's filter UI.
func sortedDistinct(tagSets ...[]string) []string {
	seen := make(map[string]struct{})
	for _, tags := range tagSets {
		for _, tag := range tags {
			seen[tag] = struct{}{}
		}
	}

	distinct := make([]string, 0, len(seen))
	for tag := range seen {
		distinct = append(distinct, tag)
	}
	sort.Strings(distinct)
	return distinct
}
