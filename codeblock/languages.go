package codeblock

import "strings"

// SearchLabel is the localization key of the language filter prompt.
const SearchLabel = "Search language"

// FilterLanguages returns the entries of languages whose label contains
// query, ignoring case. An empty query returns every entry.
func FilterLanguages(languages []string, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]string, 0, len(languages))
	for _, lang := range languages {
		if q == "" || strings.Contains(strings.ToLower(lang), q) {
			out = append(out, lang)
		}
	}
	return out
}
