package domain

import "fmt"

// AcceleratorContext describes whether the build targets CUDA and, if so,
// which major version. It is determined once per hook invocation; name and
// specifier rewriting are pure functions of this value.
type AcceleratorContext struct {
	targeted bool
	major    int
}

// Detected returns a context targeting the given CUDA major version.
func Detected(major int) AcceleratorContext {
	return AcceleratorContext{targeted: true, major: major}
}

// NotTargeted returns a context for builds that do not target CUDA.
func NotTargeted() AcceleratorContext {
	return AcceleratorContext{}
}

// Targeted reports whether the build targets CUDA.
func (c AcceleratorContext) Targeted() bool { return c.targeted }

// Major returns the CUDA major version. Only meaningful when Targeted.
func (c AcceleratorContext) Major() int { return c.major }

// Suffix returns the package name suffix for this context, e.g. "-cu12",
// or the empty string when CUDA is not targeted.
func (c AcceleratorContext) Suffix() string {
	if !c.targeted {
		return ""
	}
	return fmt.Sprintf("-cu%d", c.major)
}
