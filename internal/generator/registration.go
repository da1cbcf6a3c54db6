package generator

import (
	"fmt"
	"regexp"

	"github.com/samvera-labs/workgen/internal/patch"
	"github.com/samvera-labs/workgen/internal/work"
)

// DefaultInitializer is the Hyrax initializer relative to the project root.
const DefaultInitializer = "config/initializers/hyrax.rb"

// configBlockOpener starts the Hyrax configuration block.
const configBlockOpener = "Hyrax.config do |config|"

var (
	registrationRe = regexp.MustCompile(`config\.register_curation_concern\s+(:"[^"]*"|:[A-Za-z_][\w/]*)`)
	commentLine    = patch.Regexp(regexp.MustCompile(`^\s*#`))
)

// registeredSymbol returns the symbol registered on line, if any.
func registeredSymbol(line string) (string, bool) {
	m := registrationRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// registrationPatch registers spec after the last registration of any other
// resource, or at the top of the config block when there is none.
func registrationPatch(spec *work.ResourceSpec) patch.Patch {
	symbol := spec.RegistrationSymbol()

	ownSymbol := func(line string) bool {
		s, _ := registeredSymbol(line)
		return s == symbol
	}
	registration := patch.Regexp(registrationRe)

	otherResource := patch.And(registration, patch.Not(ownSymbol))
	alreadyRegistered := patch.And(patch.Not(commentLine), registration, ownSymbol)

	return patch.Patch{
		Anchor: patch.Anchor{
			Description: "last config.register_curation_concern",
			Match:       otherResource,
			Position:    patch.After,
			Last:        true,
			Fallback: &patch.Anchor{
				Description: configBlockOpener,
				Match:       patch.Trimmed(configBlockOpener),
				Position:    patch.After,
			},
		},
		Lines: []string{
			fmt.Sprintf("  # Injected via `workgen generate %s`", spec.ClassName),
			"  config.register_curation_concern " + symbol,
		},
		Guard: alreadyRegistered,
	}
}
