package domain

// StampMode selects the commit-stamper behavior when a target file has no
// marker line.
type StampMode string

const (
	// StampModeAppend appends a marker line, creating the file if needed.
	StampModeAppend StampMode = "append"
	// StampModeSkip leaves files without a marker line untouched.
	StampModeSkip StampMode = "skip"
)

// RequirementCategory selects which requirement list the dependency-set
// resolver produces.
type RequirementCategory string

const (
	RequirementsBuild RequirementCategory = "build"
	RequirementsHost  RequirementCategory = "host"
	RequirementsRun   RequirementCategory = "run"
)

// ResolvedConfig is the immutable per-invocation build configuration,
// merged from pyproject.toml, environment variables and dynamic config
// settings. It is created once per hook invocation and never mutated.
type ResolvedConfig struct {
	// ProjectName is the package name from [project].name.
	ProjectName string

	// BuildBackend names the wrapped backend executable.
	BuildBackend string

	// Requires are extra build requirements merged into every
	// get-requires result.
	Requires []string

	// DependenciesFile is the path of the dependency-declaration file,
	// relative to the project directory.
	DependenciesFile string

	// DisableCUDA disables CUDA detection and all name/specifier rewriting.
	DisableCUDA bool

	// RequireCUDA makes an undetectable CUDA version a fatal error.
	RequireCUDA bool

	// MatrixEntry is the raw "key=value;key=value" build matrix entry.
	MatrixEntry string

	// OnlyReleaseDeps suppresses the pre-release floor constraint that
	// otherwise lets nightly builds satisfy unpinned specifiers.
	OnlyReleaseDeps bool

	// CommitFiles are the commit-marker target files, relative to the
	// project directory. An explicitly empty list disables stamping.
	CommitFiles []string

	// CommitFileMode controls behavior for files without a marker line.
	CommitFileMode StampMode

	// Settings holds the raw dynamic config settings of the invocation,
	// forwarded to the wrapped backend with proxy-owned keys removed.
	Settings map[string]string
}
