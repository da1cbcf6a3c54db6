// Package work derives the naming state of a Hyrax work resource from the
// name given on the command line.
package work

import (
	"fmt"
	"path"
	"strings"
)

// Mode selects whether a run creates or removes a scaffold.
type Mode int

const (
	// Generate creates files and applies patches.
	Generate Mode = iota

	// Revoke removes files and reverts patches.
	Revoke
)

// String returns the mode name used in summaries.
func (m Mode) String() string {
	if m == Revoke {
		return "destroy"
	}
	return "generate"
}

// ResourceSpec is the immutable naming state shared by every generator step.
type ResourceSpec struct {
	// Name is the input name after any singularization.
	Name string

	// ClassName is the fully qualified Ruby constant, e.g. "Abc::ScholarlyPaper".
	ClassName string

	// FileName is the underscored last segment, e.g. "scholarly_paper".
	FileName string

	// PluralFileName is the pluralized FileName, e.g. "scholarly_papers".
	PluralFileName string

	// ClassPath holds the underscored namespace segments, e.g. ["abc"].
	ClassPath []string

	// Attributes are the parsed attribute tokens in input order.
	Attributes []Attribute

	// Mode selects generate or revoke.
	Mode Mode
}

// Options control how a ResourceSpec is built.
type Options struct {
	// ForcePlural keeps a plural name as given.
	ForcePlural bool

	// Mode selects generate or revoke.
	Mode Mode

	// Warn receives non-fatal messages such as the plural warning. May be nil.
	Warn func(msg string)
}

// NewResourceSpec derives a ResourceSpec from name and attribute tokens.
// It fails with *InvalidNameError when the singular name is reserved.
func NewResourceSpec(name string, attrTokens []string, opts Options) (*ResourceSpec, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &InvalidNameError{Name: name, Reason: "name must not be empty"}
	}

	if !opts.ForcePlural {
		if singular, ok := singularIfPlural(name); ok {
			if opts.Warn != nil {
				opts.Warn(fmt.Sprintf("[WARNING] The model name '%s' was recognized as a plural, using the singular '%s' instead. "+
					"Override with --force-plural or setup custom inflection rules for this noun before running the generator.", name, singular))
			}
			name = singular
		}
	}

	if err := ValidateName(name); err != nil {
		return nil, err
	}

	attrs, err := ParseAttributes(attrTokens)
	if err != nil {
		return nil, err
	}

	spec := Derive(name)
	spec.Attributes = attrs
	spec.Mode = opts.Mode
	return spec, nil
}

// RegistrationSymbol is the Ruby symbol used to register the resource as a
// curation concern: :file_name, or :"ns/file_name" when namespaced.
func (s *ResourceSpec) RegistrationSymbol() string {
	if len(s.ClassPath) == 0 {
		return ":" + s.FileName
	}
	return fmt.Sprintf(":%q", s.namespacedPath(s.FileName))
}

// ClassPathDir joins ClassPath as a slash separated directory, "" when empty.
func (s *ResourceSpec) ClassPathDir() string {
	return path.Join(s.ClassPath...)
}

// AttributeNames returns the attribute names in order.
func (s *ResourceSpec) AttributeNames() []string {
	names := make([]string, len(s.Attributes))
	for i, a := range s.Attributes {
		names[i] = a.Name
	}
	return names
}

func (s *ResourceSpec) namespacedPath(leaf string) string {
	return path.Join(append(append([]string{}, s.ClassPath...), leaf)...)
}
