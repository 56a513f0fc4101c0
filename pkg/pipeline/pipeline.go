// Package pipeline coordinates the component plugin: discovery into a
// read-only collection, asset accumulation, and the fail-silent
// RenderComponent filter hosts expose to their templates.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-components/internal/loader"
	"github.com/goliatone/go-components/pkg/assets"
	"github.com/goliatone/go-components/pkg/component"
	"github.com/goliatone/go-components/pkg/render"
	"github.com/goliatone/go-components/pkg/render/htmltmpl"
	"github.com/goliatone/go-components/pkg/render/pongo"
)

// DefaultCollectionName is the name hosts register the definitions
// collection under when the caller does not pick one.
const DefaultCollectionName = "component"

// Option customises the pipeline configuration.
type Option func(*Pipeline)

// WithCollection supplies a pre-built definitions collection, bypassing
// discovery.
func WithCollection(collection *component.Collection) Option {
	return func(p *Pipeline) {
		p.collection = collection
	}
}

// WithFS configures glob discovery over fsys. An empty glob falls back to
// the conventional components/**/*.tpl pattern.
func WithFS(fsys fs.FS, glob string) Option {
	return func(p *Pipeline) {
		p.fsys = fsys
		p.glob = strings.TrimSpace(glob)
	}
}

// WithEngines injects a dialect registry, replacing the built-in engines.
func WithEngines(registry *render.Registry) Option {
	return func(p *Pipeline) {
		p.engines = registry
	}
}

// WithDefaultDialect overrides the dialect used when a render call omits an
// explicit one. The built-in default is the pongo dialect.
func WithDefaultDialect(name string) Option {
	return func(p *Pipeline) {
		p.defaultDialect = strings.TrimSpace(name)
	}
}

// WithCollectionName sets the name hosts expose the collection under.
func WithCollectionName(name string) Option {
	return func(p *Pipeline) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			p.collectionName = trimmed
		}
	}
}

// WithLogger routes render diagnostics to the given logger. Render failures
// are never fatal; the logger is how developers see them.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithSanitizer applies a bluemonday policy to every rendered fragment.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(p *Pipeline) {
		p.sanitizer = policy
	}
}

// WithBundler injects the asset bundler used during Load.
func WithBundler(bundler *assets.Bundler) Option {
	return func(p *Pipeline) {
		p.bundler = bundler
	}
}

// WithRenderEnabled toggles the render filter. When disabled every call
// returns the empty string.
func WithRenderEnabled(enabled bool) Option {
	return func(p *Pipeline) {
		p.renderEnabled = enabled
	}
}

// WithAssetsEnabled toggles asset accumulation during Load.
func WithAssetsEnabled(enabled bool) Option {
	return func(p *Pipeline) {
		p.assetsEnabled = enabled
	}
}

// WithProductionExclude toggles whether IgnoreGlobs reports the component
// glob in production builds.
func WithProductionExclude(enabled bool) Option {
	return func(p *Pipeline) {
		p.productionExclude = enabled
	}
}

// Pipeline wires discovery, matching, merge and render delegation together.
// The collection is populated once during Load and read-only afterwards, so
// concurrent RenderComponent calls need no locking.
type Pipeline struct {
	collection *component.Collection
	engines    *render.Registry
	bundler    *assets.Bundler
	sanitizer  *bluemonday.Policy
	logger     *slog.Logger

	fsys fs.FS
	glob string

	defaultDialect string
	collectionName string

	renderEnabled     bool
	assetsEnabled     bool
	productionExclude bool

	initialiseErr error
}

// New constructs a Pipeline applying any provided options. Missing
// dependencies are initialised with the built-in implementations: a registry
// holding the pongo and html engines, a silent logger, and the default
// collection name.
func New(options ...Option) *Pipeline {
	p := &Pipeline{
		defaultDialect: pongo.DialectName,
		collectionName: DefaultCollectionName,
		renderEnabled:  true,
		assetsEnabled:  true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	p.applyDefaults()
	return p
}

func (p *Pipeline) applyDefaults() {
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if p.engines == nil {
		registry := render.NewRegistry()
		pongoEngine, err := pongo.New()
		if err != nil {
			p.initialiseErr = fmt.Errorf("pipeline: initialise pongo engine: %w", err)
			return
		}
		if err := registry.Register(pongoEngine); err != nil {
			p.initialiseErr = err
			return
		}
		if err := registry.Register(htmltmpl.New()); err != nil {
			p.initialiseErr = err
			return
		}
		p.engines = registry
	}
}

// Load runs discovery when a filesystem was configured and feeds the asset
// buckets. It is the build-setup phase: errors here are loud, unlike render
// failures. Calling Load without WithFS is valid when WithCollection
// supplied the definitions.
func (p *Pipeline) Load(ctx context.Context) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if p.initialiseErr != nil {
		return p.initialiseErr
	}

	if p.fsys != nil {
		collection, err := loader.Load(p.fsys, p.glob)
		if err != nil {
			return err
		}
		p.collection = collection
		p.logger.Info("components loaded",
			slog.Int("count", collection.Len()),
			slog.String("glob", p.globOrDefault()),
		)
	}

	if p.collection == nil {
		return errors.New("pipeline: no collection configured; use WithFS or WithCollection")
	}

	if p.assetsEnabled && p.bundler != nil {
		p.bundler.CollectFrom(p.collection)
	}
	return nil
}

// Collection returns the definitions collection. Nil before Load when only
// WithFS was configured.
func (p *Pipeline) Collection() *component.Collection {
	return p.collection
}

// CollectionName returns the name hosts expose the collection under.
func (p *Pipeline) CollectionName() string {
	return p.collectionName
}

// Engines returns the dialect registry.
func (p *Pipeline) Engines() *render.Registry {
	return p.engines
}

// Bundler returns the configured asset bundler, or nil.
func (p *Pipeline) Bundler() *assets.Bundler {
	return p.bundler
}

// DefaultDialect returns the dialect used when render calls omit one.
func (p *Pipeline) DefaultDialect() string {
	return p.defaultDialect
}

// IgnoreGlobs returns the globs a host should exclude from its
// output-generating file set: the component glob when production exclusion
// is enabled and the build runs in production mode, nil otherwise.
func (p *Pipeline) IgnoreGlobs() []string {
	if !p.productionExclude || !IsProduction() {
		return nil
	}
	return []string{p.globOrDefault()}
}

func (p *Pipeline) globOrDefault() string {
	if p.glob != "" {
		return p.glob
	}
	return loader.DefaultGlob
}
