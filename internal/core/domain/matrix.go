package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// MatrixAxisCUDA is the matrix axis selecting the CUDA version.
const MatrixAxisCUDA = "cuda"

// BuildMatrix maps matrix axis names (e.g. "cuda", "arch") to values.
// An empty matrix is valid and means no axis overrides.
type BuildMatrix map[string]string

// ParseMatrix parses a flat "key=value;key=value" entry into a BuildMatrix.
// An empty entry yields an empty matrix. A segment without '=' is an error.
// Duplicate keys are not an error; the last occurrence wins, so matrix
// generation tooling may emit overrides.
func ParseMatrix(entry string) (BuildMatrix, error) {
	matrix := BuildMatrix{}
	if entry == "" {
		return matrix, nil
	}

	for _, segment := range strings.Split(entry, ";") {
		key, value, ok := strings.Cut(segment, "=")
		if !ok {
			return nil, zerr.With(zerr.Wrap(ErrMatrix, "segment is missing '='"), "segment", segment)
		}
		matrix[key] = value
	}
	return matrix, nil
}
