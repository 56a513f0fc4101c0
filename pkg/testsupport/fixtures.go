// Package testsupport holds fixture helpers shared by contract tests:
// composing component files with frontmatter and building in-memory
// component directories.
package testsupport

import (
	"strings"
	"testing"
	"testing/fstest"

	"gopkg.in/yaml.v3"
)

// ComponentFile composes a component source file: a YAML frontmatter block
// built from meta followed by the template source. Helpers panic via t.Fatal
// on failure to keep contract tests concise.
func ComponentFile(t *testing.T, meta map[string]any, source string) string {
	t.Helper()

	if len(meta) == 0 {
		return source
	}
	encoded, err := yaml.Marshal(meta)
	if err != nil {
		t.Fatalf("testsupport: marshal frontmatter: %v", err)
	}
	return "---\n" + strings.TrimRight(string(encoded), "\n") + "\n---\n" + source
}

// ComponentDir builds an in-memory filesystem from path → file content
// pairs, ready for glob discovery.
func ComponentDir(t *testing.T, files map[string]string) fstest.MapFS {
	t.Helper()

	fsys := fstest.MapFS{}
	for path, content := range files {
		fsys[path] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}
