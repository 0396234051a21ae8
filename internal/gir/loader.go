package gir

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

// ResolveFile finds the GIR document for namespaceName on disk, searching
// girDirectories in order and returning the first match. Version, when
// non-empty, is matched against the "<namespace>-<version>.gir" filename
// before falling back to a bare "<namespace>.gir": a fixed, ordered list
// of candidate roots, first existing file wins, no fallback once all
// roots are exhausted.
func ResolveFile(namespaceName, version string, girDirectories []string) (string, error) {
	candidates := make([]string, 0, 2)
	if version != "" {
		candidates = append(candidates, namespaceName+"-"+version+".gir")
	}
	candidates = append(candidates, namespaceName+".gir")

	for _, dir := range girDirectories {
		for _, candidate := range candidates {
			full := filepath.Join(dir, candidate)
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				return full, nil
			}
		}
	}
	return "", fmt.Errorf("gir: %s-%s not found in %v", namespaceName, version, girDirectories)
}

// Load decodes one GIR document from path.
func Load(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gir: reading %s: %w", path, err)
	}

	var repo Repository
	if err := xml.Unmarshal(data, &repo); err != nil {
		return nil, fmt.Errorf("gir: decoding %s: %w", path, err)
	}
	if repo.Namespace.Name == "" {
		return nil, fmt.Errorf("gir: %s: %w", path, ErrMissingNamespace)
	}
	return &repo, nil
}

// ErrMissingNamespace is returned by Load when a document has no
// <namespace> element: the one fatal condition in this package that
// aborts only the module being loaded.
var ErrMissingNamespace = fmt.Errorf("missing namespace element")
