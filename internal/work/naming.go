package work

import (
	"regexp"
	"strings"

	"github.com/jinzhu/inflection"
)

var (
	segmentSeparator = regexp.MustCompile(`::|/`)
	acronymBoundary  = regexp.MustCompile(`([A-Z\d]+)([A-Z][a-z])`)
	wordBoundary     = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

// Underscore converts a constant name to its file name the way Rails does.
// Words split on case changes only, so digits stay with the word before
// them: "HTMLPage" is "html_page" and "Book2" is "book2".
func Underscore(s string) string {
	s = acronymBoundary.ReplaceAllString(s, "${1}_${2}")
	s = wordBoundary.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(strings.ReplaceAll(s, "-", "_"))
}

// Camelize is the inverse of Underscore for a single segment: each
// underscore-separated word is capitalized and the separators dropped.
func Camelize(s string) string {
	var sb strings.Builder
	for _, word := range strings.Split(s, "_") {
		if word == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(word[:1]) + word[1:])
	}
	return sb.String()
}

// Derive computes ClassName, FileName, PluralFileName and ClassPath from a
// name such as "scholarly_paper", "ScholarlyPaper", "abc/scholarly_paper"
// or "Abc::ScholarlyPaper". It does not validate the name.
func Derive(name string) *ResourceSpec {
	var segments []string
	for _, part := range segmentSeparator.Split(strings.TrimSpace(name), -1) {
		if part = strings.TrimSpace(part); part != "" {
			segments = append(segments, Underscore(part))
		}
	}

	spec := &ResourceSpec{Name: name}
	if len(segments) == 0 {
		return spec
	}

	spec.FileName = segments[len(segments)-1]
	spec.ClassPath = segments[:len(segments)-1]
	spec.PluralFileName = inflection.Plural(spec.FileName)

	consts := make([]string, len(segments))
	for i, seg := range segments {
		consts[i] = Camelize(seg)
	}
	spec.ClassName = strings.Join(consts, "::")
	return spec
}

// singularIfPlural reports whether name reads as a plural noun and returns
// its singular form. Names whose singular and plural forms coincide are not
// treated as plural.
func singularIfPlural(name string) (string, bool) {
	plural := inflection.Plural(name)
	singular := inflection.Singular(name)
	if name == plural && singular != plural {
		return singular, true
	}
	return "", false
}
