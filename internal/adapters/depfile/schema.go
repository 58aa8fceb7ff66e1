package depfile

import (
	"errors"
	"os"

	"github.com/rapidsai/rapids-build-backend/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// depsFile is the on-disk shape of the dependency-declaration file.
type depsFile struct {
	Files        map[string]fileEntry `yaml:"files"`
	Dependencies map[string]depsList  `yaml:"dependencies"`
	Suffixable   []string             `yaml:"suffixable"`
}

// fileEntry describes one output artifact: which dependency lists feed it
// and which output type its entries are filtered by.
type fileEntry struct {
	Output   string   `yaml:"output"`
	Includes []string `yaml:"includes"`
}

type depsList struct {
	Common   []commonEntry   `yaml:"common"`
	Specific []specificEntry `yaml:"specific"`
}

type commonEntry struct {
	OutputTypes outputTypes `yaml:"output_types"`
	Packages    []string    `yaml:"packages"`
}

type specificEntry struct {
	OutputTypes outputTypes    `yaml:"output_types"`
	Matrices    []matrixBranch `yaml:"matrices"`
}

// matrixBranch is one arm of a specific entry. A nil Matrix (spelled
// `matrix: null` in the file) is the unconditional fallback.
type matrixBranch struct {
	Matrix   map[string]string `yaml:"matrix"`
	Packages []string          `yaml:"packages"`
}

// outputTypes accepts both the scalar and the list spelling.
type outputTypes []string

func (o *outputTypes) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*o = outputTypes{single}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*o = outputTypes(list)
		return nil
	default:
		return zerr.New("output_types must be a string or a list of strings")
	}
}

// matches reports whether an entry applies to the given output type. An
// entry without output_types applies everywhere.
func (o outputTypes) matches(output string) bool {
	if len(o) == 0 || output == "" {
		return true
	}
	for _, t := range o {
		if t == output {
			return true
		}
	}
	return false
}

func load(path string) (*depsFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the project's own configuration
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrDependencyResolution, "dependency declaration file not found"), "path", path)
		}
		return nil, zerr.Wrap(errors.Join(domain.ErrDependencyResolution, err), "failed to read dependency declaration file")
	}

	var doc depsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrDependencyResolution, err), "failed to parse dependency declaration file")
	}
	return &doc, nil
}
