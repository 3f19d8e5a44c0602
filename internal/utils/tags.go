package utils

import "strings"

// ParseTags splits a comma separated tag string. Tags are trimmed, blanks are
// dropped and duplicates keep their first position. The result is never nil.
func ParseTags(raw string) []string {
	tags := []string{}
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// JoinTags renders tags back into the comma separated form.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
