// Package assets accumulates the CSS and JS fragments components contribute
// and emits one combined artifact per kind. It keeps no ordering, dedup or
// minification logic of its own: fragments come out in the order they went
// in, joined with newlines.
package assets

import "strings"

// Asset kinds with a dedicated bucket.
const (
	KindCSS = "css"
	KindJS  = "js"
)

// Bucket is a named, ordered accumulator of asset fragments.
type Bucket struct {
	name      string
	fragments []string
}

// NewBucket creates an empty bucket for the given asset kind.
func NewBucket(name string) *Bucket {
	return &Bucket{name: name}
}

// Name returns the asset kind this bucket collects.
func (b *Bucket) Name() string {
	if b == nil {
		return ""
	}
	return b.name
}

// Add appends a fragment. Empty or whitespace-only fragments are dropped.
func (b *Bucket) Add(fragment string) {
	if b == nil || strings.TrimSpace(fragment) == "" {
		return
	}
	b.fragments = append(b.fragments, fragment)
}

// Len reports the number of collected fragments.
func (b *Bucket) Len() int {
	if b == nil {
		return 0
	}
	return len(b.fragments)
}

// Bundle joins the collected fragments with newlines into one artifact.
func (b *Bucket) Bundle() string {
	if b == nil {
		return ""
	}
	return strings.Join(b.fragments, "\n")
}
