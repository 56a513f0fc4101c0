// Package loader discovers component files on a filesystem and turns them
// into definitions: glob match, frontmatter decode, template source extract.
// Load failures are loud; this runs during build setup, not at render time.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/goliatone/go-components/pkg/component"
)

// DefaultGlob matches component files under a conventional directory. The
// `**` segment requires doublestar semantics; fs.Glob does not support it.
const DefaultGlob = "components/**/*.tpl"

// Load discovers component files matching pattern inside fsys and returns
// them as an ordered collection. Matches are sorted lexically so discovery
// order is deterministic across platforms; that order is also the matcher's
// tie-break order for duplicate slugs.
func Load(fsys fs.FS, pattern string) (*component.Collection, error) {
	if fsys == nil {
		return nil, errors.New("loader: filesystem is required")
	}
	if strings.TrimSpace(pattern) == "" {
		pattern = DefaultGlob
	}

	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("loader: glob %q: %w", pattern, err)
	}
	sort.Strings(matches)

	collection := component.NewCollection()
	for _, match := range matches {
		info, err := fs.Stat(fsys, match)
		if err != nil {
			return nil, fmt.Errorf("loader: stat %s: %w", match, err)
		}
		if info.IsDir() {
			continue
		}

		def, err := loadFile(fsys, match)
		if err != nil {
			return nil, err
		}
		collection.Add(def)
	}

	return collection, nil
}

func loadFile(fsys fs.FS, filePath string) (component.Definition, error) {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return component.Definition{}, fmt.Errorf("loader: read %s: %w", filePath, err)
	}

	meta, source, hasMeta := splitFrontmatter(string(data))

	def := component.Definition{
		Source: source,
		Path:   filePath,
	}

	if hasMeta {
		fm, err := parseFrontmatter(meta, filePath)
		if err != nil {
			return component.Definition{}, err
		}
		def.DisplayName = fm.Name
		def.Defaults = fm.Defaults
		def.CSS = fm.CSS
		def.JS = fm.JS
	}

	if def.DisplayName == "" {
		def.DisplayName = fileStem(filePath)
	}

	return def, nil
}

// fileStem derives a display name from the file path when the frontmatter
// does not declare one: base name without its extension.
func fileStem(filePath string) string {
	base := path.Base(filePath)
	return strings.TrimSuffix(base, path.Ext(base))
}
