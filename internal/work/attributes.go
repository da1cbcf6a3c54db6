package work

import (
	"fmt"
	"strings"

	oerrors "github.com/samvera-labs/workgen/internal/errors"
)

// DefaultAttributeType is used when a token names no type.
const DefaultAttributeType = "string"

// Attribute is one "name:type" pair from the command line.
type Attribute struct {
	Name string
	Type string
}

// ParseAttributes parses tokens of the form name[:type[:modifier]].
// Modifiers are accepted and ignored. Order and duplicates are preserved.
func ParseAttributes(tokens []string) ([]Attribute, error) {
	attrs := make([]Attribute, 0, len(tokens))
	for _, tok := range tokens {
		parts := strings.Split(strings.TrimSpace(tok), ":")
		name := strings.TrimSpace(parts[0])
		if name == "" {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("attribute %q has no name", tok),
				"",
				"Attributes take the form name[:type], e.g. title:string.",
			)
		}

		typ := DefaultAttributeType
		if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
			typ = strings.TrimSpace(parts[1])
		}
		attrs = append(attrs, Attribute{Name: name, Type: typ})
	}
	return attrs, nil
}
