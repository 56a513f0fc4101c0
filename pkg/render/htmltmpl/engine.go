package htmltmpl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"sync"
)

// DialectName is the registry key for the html/template engine.
const DialectName = "html"

// Engine renders component fragments with Go's html/template syntax and its
// contextual auto-escaping. Parsed fragments are cached by source text.
type Engine struct {
	mu      sync.RWMutex
	funcMap template.FuncMap
	cache   map[string]*template.Template
}

// Option configures the engine before construction.
type Option func(*Engine)

// WithFuncs merges helper functions into the fragment FuncMap.
func WithFuncs(funcs template.FuncMap) Option {
	return func(e *Engine) {
		for name, fn := range funcs {
			e.funcMap[name] = fn
		}
	}
}

// New constructs an Engine applying any provided options.
func New(options ...Option) *Engine {
	e := &Engine{
		funcMap: template.FuncMap{},
		cache:   make(map[string]*template.Template),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Name identifies the dialect in the engine registry.
func (e *Engine) Name() string { return DialectName }

// Render parses the fragment source (cached after first use) and executes it
// against the merged data context.
func (e *Engine) Render(ctx context.Context, source string, data map[string]any) (string, error) {
	if e == nil {
		return "", errors.New("htmltmpl: engine is nil")
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}

	tmpl, err := e.getTemplate(source)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("htmltmpl: execute fragment: %w", err)
	}
	return buf.String(), nil
}

func (e *Engine) getTemplate(source string) (*template.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.cache[source]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[source]; ok {
		return tmpl, nil
	}

	tmpl, err := template.New("fragment").Funcs(e.funcMap).Parse(source)
	if err != nil {
		return nil, fmt.Errorf("htmltmpl: parse fragment: %w", err)
	}

	e.cache[source] = tmpl
	return tmpl, nil
}
