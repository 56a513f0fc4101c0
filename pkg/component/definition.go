package component

import (
	"github.com/gosimple/slug"
)

// Definition is a named template fragment plus the default field values its
// author declared. Definitions are populated once during build setup and are
// read-only at render time, so concurrent renders may share them freely.
type Definition struct {
	// DisplayName is the human-facing name declared in the fragment's
	// metadata block; the matching key is derived from it.
	DisplayName string

	// Defaults maps field names to the values used when a content item does
	// not supply its own.
	Defaults map[string]any

	// Source is the raw template text after the metadata block.
	Source string

	// CSS and JS hold optional asset fragments contributed to the build-wide
	// bundles.
	CSS string
	JS  string

	// Path records where the definition was discovered. Diagnostics only.
	Path string
}

// Slug returns the normalized matching key for the definition: lowercase,
// non-alphanumeric runs collapsed to single hyphens, leading and trailing
// hyphens trimmed. Slugify(Slug()) == Slug().
func (d Definition) Slug() string {
	return Slugify(d.DisplayName)
}

// Slugify normalizes a display name or requested type into a matching key.
// The empty string stays empty.
func Slugify(name string) string {
	if name == "" {
		return ""
	}
	return slug.Make(name)
}
