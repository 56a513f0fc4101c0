package pongo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-components/pkg/render"
)

// DialectName is the registry key for the pongo2 engine.
const DialectName = "pongo"

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	globals map[string]any
	filters map[string]func(input any, param any) (any, error)
}

// WithGlobals seeds context values available to every fragment.
func WithGlobals(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globals[strings.TrimSpace(key)] = value
		}
	}
}

// WithFilter registers a template filter when the engine loads.
func WithFilter(name string, fn func(input any, param any) (any, error)) Option {
	return func(cfg *config) {
		name = strings.TrimSpace(name)
		if name == "" || fn == nil {
			return
		}
		if cfg.filters == nil {
			cfg.filters = make(map[string]func(input any, param any) (any, error))
		}
		cfg.filters[name] = fn
	}
}

// Engine renders component fragments with pongo2's Django-style syntax.
// Parsed fragments are cached by source text, so re-rendering the same
// component across many items compiles once.
type Engine struct {
	mu sync.RWMutex

	templateSet *pongo2.TemplateSet
	cache       map[string]*pongo2.Template
}

var _ render.Engine = (*Engine)(nil)

// New constructs an Engine applying any provided configuration options.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	engine := &Engine{
		templateSet: pongo2.NewSet("components", pongo2.DefaultLoader),
		cache:       make(map[string]*pongo2.Template),
	}

	if len(cfg.globals) > 0 {
		globalCtx, err := convertToContext(cfg.globals)
		if err != nil {
			return nil, fmt.Errorf("pongo: apply globals: %w", err)
		}
		engine.templateSet.Globals = globalCtx
	}

	for name, fn := range cfg.filters {
		if err := engine.RegisterFilter(name, fn); err != nil {
			return nil, fmt.Errorf("pongo: register filter %q: %w", name, err)
		}
	}

	return engine, nil
}

// Name identifies the dialect in the engine registry.
func (e *Engine) Name() string { return DialectName }

// Render parses the fragment source (cached after first use) and executes it
// against the merged data context.
func (e *Engine) Render(ctx context.Context, source string, data map[string]any) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("pongo: engine is nil")
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

	viewContext, err := convertToContext(data)
	if err != nil {
		return "", fmt.Errorf("pongo: convert data: %w", err)
	}

	var buf bytes.Buffer

	e.mu.RLock()
	err = tmpl.ExecuteWriter(viewContext, &buf)
	e.mu.RUnlock()

	if err != nil {
		return "", fmt.Errorf("pongo: execute fragment: %w", err)
	}
	return buf.String(), nil
}

// RegisterFilter exposes pongo2 filter registration behind the engine's
// neutral signature. Filters are process-wide in pongo2; registering an
// existing name is an error.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("pongo: filter name and function required")
	}

	filter := func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "custom_filter", OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}

	if pongo2.FilterExists(name) {
		return fmt.Errorf("pongo: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, filter)
}

func (e *Engine) getTemplate(source string) (*pongo2.Template, error) {
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

	tmpl, err := e.templateSet.FromString(source)
	if err != nil {
		return nil, fmt.Errorf("pongo: parse fragment: %w", err)
	}

	e.cache[source] = tmpl
	return tmpl, nil
}

func isCallable(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.IsValid() && rv.Kind() == reflect.Func
}

func convertToContext(data map[string]any) (pongo2.Context, error) {
	out := make(pongo2.Context, len(data))
	for key, value := range data {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		converted, err := convertValue(value)
		if err != nil {
			return nil, err
		}
		out[key] = converted
	}
	return out, nil
}

func convertValue(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	if isCallable(value) {
		return value, nil
	}

	switch v := value.(type) {
	case string, bool, int, int32, int64, float32, float64:
		return v, nil
	case map[string]any:
		return convertMap(v)
	case []any:
		return convertSlice(v)
	default:
		raw, err := jsonToAny(v)
		if err != nil {
			return nil, err
		}
		switch decoded := raw.(type) {
		case map[string]any:
			return convertMap(decoded)
		case []any:
			return convertSlice(decoded)
		default:
			return decoded, nil
		}
	}
}

func convertMap(in map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(in))
	for key, value := range in {
		converted, err := convertValue(value)
		if err != nil {
			return nil, err
		}
		out[key] = converted
	}
	return out, nil
}

func convertSlice(in []any) ([]any, error) {
	out := make([]any, 0, len(in))
	for _, value := range in {
		converted, err := convertValue(value)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

func jsonToAny(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
