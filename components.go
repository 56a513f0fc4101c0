// Package components glues a component naming convention onto a static-site
// host: template fragments discovered by glob, matched to content items by a
// slugified type field, merged with declared defaults and rendered through a
// pluggable template dialect, with CSS/JS fragments bundled per build.
package components

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-components/pkg/assets"
	"github.com/goliatone/go-components/pkg/component"
	"github.com/goliatone/go-components/pkg/pipeline"
	"github.com/goliatone/go-components/pkg/render"
)

// Definition is a named, defaulted template fragment.
type Definition = component.Definition

// Item is one content request carrying the distinguished type field.
type Item = component.Item

// Collection holds definitions in discovery order.
type Collection = component.Collection

// Config mirrors the plugin configuration surface for YAML callers.
type Config = pipeline.Config

// Pipeline coordinates discovery, matching and render delegation.
type Pipeline = pipeline.Pipeline

// Option customises the pipeline configuration.
type Option = pipeline.Option

// Engine renders raw fragment source against a data context.
type Engine = render.Engine

// New constructs a Pipeline exposing the defaults most hosts want: built-in
// pongo and html dialects, the "component" collection name, silent logging.
func New(options ...Option) *Pipeline {
	return pipeline.New(options...)
}

// Load builds a pipeline over fsys, runs discovery and returns it ready to
// render. It is the simplest entry point for hosts that just want the
// renderComponent filter.
func Load(ctx context.Context, fsys fs.FS, glob string, options ...Option) (*Pipeline, error) {
	opts := append([]Option{pipeline.WithFS(fsys, glob)}, options...)
	p := pipeline.New(opts...)
	if err := p.Load(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// Slugify exposes the matching-key normalization used by the matcher.
func Slugify(name string) string {
	return component.Slugify(name)
}

// NewBundler constructs the CSS/JS asset bundler.
func NewBundler(options ...assets.Option) *assets.Bundler {
	return assets.NewBundler(options...)
}

// WithFS, WithCollection and friends re-exported so most hosts only import
// the root package.
var (
	WithFS                = pipeline.WithFS
	WithCollection        = pipeline.WithCollection
	WithEngines           = pipeline.WithEngines
	WithDefaultDialect    = pipeline.WithDefaultDialect
	WithCollectionName    = pipeline.WithCollectionName
	WithLogger            = pipeline.WithLogger
	WithSanitizer         = pipeline.WithSanitizer
	WithBundler           = pipeline.WithBundler
	WithRenderEnabled     = pipeline.WithRenderEnabled
	WithAssetsEnabled     = pipeline.WithAssetsEnabled
	WithProductionExclude = pipeline.WithProductionExclude
)
