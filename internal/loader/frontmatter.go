package loader

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// frontmatter holds the parsed metadata block of a component file. The name,
// css and js keys are reserved; every other top-level key becomes a default
// field value.
type frontmatter struct {
	Name     string
	CSS      string
	JS       string
	Defaults map[string]any
}

// splitFrontmatter separates a component file into its metadata block and
// template source. Files without a leading delimiter have no metadata and
// the whole payload is source.
func splitFrontmatter(raw string) (meta string, source string, hasMeta bool) {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	if !strings.HasPrefix(normalized, frontmatterDelimiter+"\n") {
		return "", raw, false
	}

	rest := normalized[len(frontmatterDelimiter)+1:]
	idx := strings.Index(rest, "\n"+frontmatterDelimiter)
	if idx < 0 {
		return "", raw, false
	}

	meta = rest[:idx]
	source = rest[idx+len(frontmatterDelimiter)+1:]
	source = strings.TrimPrefix(source, "\n")
	return meta, source, true
}

// parseFrontmatter decodes the metadata block, pulling out the reserved keys
// and collecting the remainder as default field values.
func parseFrontmatter(meta string, path string) (frontmatter, error) {
	fm := frontmatter{}
	if strings.TrimSpace(meta) == "" {
		return fm, nil
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal([]byte(meta), &raw); err != nil {
		return fm, fmt.Errorf("loader: parse frontmatter in %s: %w", path, err)
	}

	for key, value := range raw {
		switch key {
		case "name":
			name, ok := value.(string)
			if !ok {
				return fm, fmt.Errorf("loader: frontmatter name in %s must be a string", path)
			}
			fm.Name = strings.TrimSpace(name)
		case "css":
			fm.CSS = stringValue(value)
		case "js":
			fm.JS = stringValue(value)
		default:
			if fm.Defaults == nil {
				fm.Defaults = make(map[string]any)
			}
			fm.Defaults[key] = value
		}
	}

	return fm, nil
}

func stringValue(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return s
}
