package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/goliatone/go-components/pkg/component"
)

// Bundle file names, one artifact per asset kind.
const (
	CSSBundleName = "components.css"
	JSBundleName  = "components.js"
)

// Bundler owns the two asset buckets and writes their combined artifacts to
// the configured output directories.
type Bundler struct {
	css *Bucket
	js  *Bucket

	cssDir string
	jsDir  string
}

// Option configures a Bundler.
type Option func(*Bundler)

// WithCSSDir sets the output directory for the CSS bundle.
func WithCSSDir(dir string) Option {
	return func(b *Bundler) {
		b.cssDir = strings.TrimSpace(dir)
	}
}

// WithJSDir sets the output directory for the JS bundle.
func WithJSDir(dir string) Option {
	return func(b *Bundler) {
		b.jsDir = strings.TrimSpace(dir)
	}
}

// NewBundler creates a Bundler with empty buckets.
func NewBundler(options ...Option) *Bundler {
	b := &Bundler{
		css: NewBucket(KindCSS),
		js:  NewBucket(KindJS),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// CSS exposes the CSS bucket so hosts can contribute fragments directly.
func (b *Bundler) CSS() *Bucket { return b.css }

// JS exposes the JS bucket so hosts can contribute fragments directly.
func (b *Bundler) JS() *Bucket { return b.js }

// CollectFrom pulls asset fragments from every definition in collection
// order. Definitions without fragments contribute nothing.
func (b *Bundler) CollectFrom(collection *component.Collection) {
	if b == nil || collection == nil {
		return
	}
	for _, def := range collection.All() {
		b.css.Add(def.CSS)
		b.js.Add(def.JS)
	}
}

// Write emits one artifact per non-empty bucket into its configured
// directory. Writes are atomic so an interrupted build never leaves a torn
// bundle behind. Buckets without fragments or without a directory are
// skipped.
func (b *Bundler) Write() error {
	if b == nil {
		return nil
	}
	if err := writeBundle(b.cssDir, CSSBundleName, b.css); err != nil {
		return err
	}
	return writeBundle(b.jsDir, JSBundleName, b.js)
}

func writeBundle(dir, name string, bucket *Bucket) error {
	if dir == "" || bucket.Len() == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("assets: create %s: %w", dir, err)
	}
	target := filepath.Join(dir, name)
	if err := atomic.WriteFile(target, strings.NewReader(bucket.Bundle())); err != nil {
		return fmt.Errorf("assets: write %s: %w", target, err)
	}
	return nil
}
