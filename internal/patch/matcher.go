package patch

import (
	"regexp"
	"strings"
)

// Matcher selects lines of a Document.
type Matcher func(line string) bool

// Trimmed matches lines equal to s once surrounding whitespace is removed.
func Trimmed(s string) Matcher {
	return func(line string) bool {
		return strings.TrimSpace(line) == s
	}
}

// Exact matches lines equal to s.
func Exact(s string) Matcher {
	return func(line string) bool {
		return line == s
	}
}

// Regexp matches lines containing a match of re.
func Regexp(re *regexp.Regexp) Matcher {
	return re.MatchString
}

// Not inverts m.
func Not(m Matcher) Matcher {
	return func(line string) bool {
		return !m(line)
	}
}

// And matches lines matched by every m.
func And(ms ...Matcher) Matcher {
	return func(line string) bool {
		for _, m := range ms {
			if !m(line) {
				return false
			}
		}
		return true
	}
}
