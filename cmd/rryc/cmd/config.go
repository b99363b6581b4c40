// config.go defines rryc's project manifest: an ordered list of source
// files to compile together through one internal/query.Store, since
// spec.md's own driver contract is a single (name, text) pair and says
// nothing about multi-file projects.
//
// Manifest format (rryc.yaml):
//
//	sources:
//	  - a.rry
//	  - b.rry
package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Manifest is the decoded form of a project's rryc.yaml.
type Manifest struct {
	Sources []string `yaml:"sources"`
}

// LoadManifest reads and decodes the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if len(m.Sources) == 0 {
		return nil, fmt.Errorf("manifest %s lists no sources", path)
	}
	return &m, nil
}
