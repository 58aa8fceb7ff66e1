package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// rewriteDistInfo renames the produced dist-info directory and its core
// metadata to the given deployment name and replaces the declared install
// requirements with runRequires, returning the new basename. Metadata
// that needs no change leaves the directory untouched.
func rewriteDistInfo(metadataDir, basename, name string, runRequires []string) (string, error) {
	renamed := distInfoBasename(basename, name)

	metadataPath := filepath.Join(metadataDir, basename, "METADATA")
	data, err := os.ReadFile(metadataPath) //nolint:gosec // path was produced by the wrapped backend
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read produced metadata"), "path", metadataPath)
	}

	next := rewriteNameField(data, name)
	next = rewriteRequiresDist(next, runRequires)
	if !bytes.Equal(next, data) {
		if err := os.WriteFile(metadataPath, next, 0o644); err != nil { //nolint:gosec // metadata is world-readable by convention
			return "", zerr.With(zerr.Wrap(err, "failed to rewrite produced metadata"), "path", metadataPath)
		}
	}

	if renamed != basename {
		if err := os.Rename(filepath.Join(metadataDir, basename), filepath.Join(metadataDir, renamed)); err != nil {
			return "", zerr.Wrap(err, "failed to rename dist-info directory")
		}
	}
	return renamed, nil
}

// distInfoBasename swaps the distribution-name prefix of a dist-info
// basename, e.g. "pkg-24.6.0.dist-info" to "pkg_cu12-24.6.0.dist-info".
// The version separator is the first hyphen; normalized distribution
// names never contain one.
func distInfoBasename(basename, name string) string {
	i := strings.Index(basename, "-")
	if i < 0 {
		return basename
	}
	return normalize(name) + basename[i:]
}

// normalize maps a display name to its distribution filename form.
func normalize(name string) string {
	return strings.ReplaceAll(strings.ReplaceAll(name, "-", "_"), ".", "_")
}

// rewriteRequiresDist replaces the Requires-Dist fields of a core
// metadata document with the given requirement list. The replacement
// takes the position of the first existing field; without one the list
// goes at the end of the header. The description body after the first
// blank line stays verbatim.
func rewriteRequiresDist(data []byte, reqs []string) []byte {
	fields := make([][]byte, 0, len(reqs))
	for _, req := range reqs {
		fields = append(fields, []byte("Requires-Dist: "+req+"\n"))
	}

	lines := bytes.SplitAfter(data, []byte("\n"))
	out := make([][]byte, 0, len(lines)+len(fields))
	placed := false
	header := true
	for _, line := range lines {
		switch {
		case header && bytes.HasPrefix(line, []byte("Requires-Dist:")):
			if !placed {
				out = append(out, fields...)
				placed = true
			}
		case header && len(bytes.TrimRight(line, "\r\n")) == 0 && len(line) > 0:
			if !placed {
				out = append(out, fields...)
				placed = true
			}
			header = false
			out = append(out, line)
		default:
			out = append(out, line)
		}
	}
	if !placed && len(fields) > 0 {
		if n := len(out); n > 0 && len(out[n-1]) > 0 && !bytes.HasSuffix(out[n-1], []byte("\n")) {
			out[n-1] = append(append([]byte{}, out[n-1]...), '\n')
		}
		out = append(out, fields...)
	}
	return bytes.Join(out, nil)
}

// rewriteNameField replaces the value of the Name field in a core
// metadata document. Field order and all other lines are preserved.
func rewriteNameField(data []byte, name string) []byte {
	lines := bytes.SplitAfter(data, []byte("\n"))
	for i, line := range lines {
		if bytes.HasPrefix(line, []byte("Name:")) {
			terminator := ""
			if bytes.HasSuffix(line, []byte("\n")) {
				terminator = "\n"
			}
			lines[i] = []byte("Name: " + name + terminator)
			break
		}
	}
	return bytes.Join(lines, nil)
}
