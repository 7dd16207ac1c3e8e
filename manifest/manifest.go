// Package manifest decodes the small YAML source-root manifest that can sit
// alongside a build-description file, mapping short aliases to source-root
// paths so a `.mlb` file can reference `$(ALIAS)/foo.sml`-style paths
// without spelling out a full relative path at every path token. Grounded
// on the teacher's Create.ParseYamlInDocstring (sqlparser/create.go), which
// decodes a YAML document embedded in a SQL docstring with the same
// library; here the YAML lives in its own file instead of a comment, since
// a build-description file has no docstring convention of its own.
package manifest

import "gopkg.in/yaml.v3"

// Manifest maps an alias (as used in a build-description path) to the
// source-root directory it expands to.
type Manifest struct {
	Roots map[string]string `yaml:"roots"`
}

// Decode parses a manifest YAML document.
func Decode(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Resolve expands a leading "$(ALIAS)" in path using the manifest's roots,
// returning path unchanged if it has no such prefix or the alias is unknown.
func (m Manifest) Resolve(path string) string {
	if len(path) < 4 || path[0] != '$' || path[1] != '(' {
		return path
	}
	end := -1
	for i := 2; i < len(path); i++ {
		if path[i] == ')' {
			end = i
			break
		}
	}
	if end < 0 {
		return path
	}
	alias := path[2:end]
	root, ok := m.Roots[alias]
	if !ok {
		return path
	}
	return root + path[end+1:]
}
