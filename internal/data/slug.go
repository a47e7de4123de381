package data

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"portfolioterm/pkg/termtypes"
)

// Slug turns a title into a lookup key: accents removed, lower-cased, and
// every run of other characters collapsed into a single hyphen.
func Slug(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, title)
	if err != nil {
		plain = title
	}
	plain = cases.Lower(language.Und).String(plain)

	var sb strings.Builder
	pendingDash := false
	for _, r := range plain {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingDash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingDash = false
			sb.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return sb.String()
}

// projectEntries assigns keys to projects, suffixing duplicates with -2, -3...
func projectEntries(projects []termtypes.Project) []ProjectEntry {
	seen := make(map[string]int, len(projects))
	out := make([]ProjectEntry, 0, len(projects))
	for i, p := range projects {
		key := Slug(p.Title)
		if key == "" {
			key = "project-" + strconv.Itoa(i+1)
		}
		seen[key]++
		if n := seen[key]; n > 1 {
			key += "-" + strconv.Itoa(n)
		}
		out = append(out, ProjectEntry{Key: key, Project: p})
	}
	return out
}
