// Package component defines the immutable component model: named template
// fragments with default field values, ordered collections populated during
// build setup, and slug-based matching of content items to definitions.
package component
