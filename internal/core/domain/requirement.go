package domain

import "regexp"

// requirementRE matches the package name and optional extras bracket of a
// dependency specifier. Everything after them (version constraints,
// environment markers) is treated opaquely.
var requirementRE = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9._-]*)(\[[^\]]*\])?`)

// RequirementSpecifier is a package name, an optional extras bracket and
// an opaque trailing version-constraint portion, e.g.
// {Name: "rmm", Extras: "[test]", Rest: ">=24.0"}.
type RequirementSpecifier struct {
	Name   string
	Extras string
	Rest   string
}

// ParseRequirement splits a dependency specifier into its package name,
// extras and the remainder. Specifiers that do not start with a package
// name are kept whole in Rest with an empty Name so they pass through
// rewriting untouched.
func ParseRequirement(spec string) RequirementSpecifier {
	m := requirementRE.FindStringSubmatch(spec)
	if m == nil {
		return RequirementSpecifier{Rest: spec}
	}
	return RequirementSpecifier{
		Name:   m[1],
		Extras: m[2],
		Rest:   spec[len(m[0]):],
	}
}

// HasConstraint reports whether the specifier carries a version
// constraint (or any other trailing qualifier). Extras alone do not
// constrain the version.
func (r RequirementSpecifier) HasConstraint() bool { return r.Rest != "" }

// String reassembles the specifier.
func (r RequirementSpecifier) String() string { return r.Name + r.Extras + r.Rest }
