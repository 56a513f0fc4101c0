package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/goliatone/go-components/pkg/component"
)

// RenderComponent is the filter hosts expose to their templates. It accepts
// a single content item or an ordered sequence of items, matches each one to
// a definition by its type field, merges defaults with the item's fields
// (item wins), and delegates rendering to the selected dialect engine.
//
// The contract is fail silent, fail safe: a missing item, a missing or
// unknown type, an absent collection, or a delegate failure yields the empty
// string for that item and is logged for diagnosis. Nothing panics and no
// error reaches the caller; one bad component must not abort a site build.
//
// Multiple items render in input order and are joined with a newline; a
// single item and a one-element sequence render identically. The optional
// dialect argument selects the template syntax, falling back to the
// configured default dialect.
func (p *Pipeline) RenderComponent(ctx context.Context, input any, dialect ...string) string {
	if p == nil || !p.renderEnabled {
		return ""
	}
	if p.initialiseErr != nil {
		p.logger.Warn("render skipped", slog.String("error", p.initialiseErr.Error()))
		return ""
	}

	items, ok := normalizeItems(input)
	if !ok || len(items) == 0 {
		return ""
	}

	target := p.defaultDialect
	if len(dialect) > 0 && strings.TrimSpace(dialect[0]) != "" {
		target = strings.TrimSpace(dialect[0])
	}

	outputs := make([]string, 0, len(items))
	for _, item := range items {
		outputs = append(outputs, p.renderItem(ctx, item, target))
	}
	return strings.Join(outputs, "\n")
}

func (p *Pipeline) renderItem(ctx context.Context, item component.Item, dialect string) string {
	typeName := item.Type()
	if typeName == "" {
		p.logger.Warn("component item has no type field")
		return ""
	}

	if p.collection == nil || p.collection.Len() == 0 {
		p.logger.Warn("component collection is empty",
			slog.String("type", typeName),
		)
		return ""
	}

	def, ok := p.collection.Match(typeName)
	if !ok {
		p.logger.Warn("no component definition matches",
			slog.String("type", typeName),
		)
		return ""
	}

	engine, err := p.engines.Get(dialect)
	if err != nil {
		p.logger.Warn("component dialect not registered",
			slog.String("type", typeName),
			slog.String("dialect", dialect),
		)
		return ""
	}

	merged := component.Merge(def.Defaults, item)

	out, err := engine.Render(ctx, def.Source, merged)
	if err != nil {
		p.logger.Warn("component render failed",
			slog.String("type", typeName),
			slog.String("dialect", dialect),
			slog.String("path", def.Path),
			slog.String("error", err.Error()),
		)
		return ""
	}

	if p.sanitizer != nil {
		out = p.sanitizer.Sanitize(out)
	}
	return out
}

// normalizeItems coerces the filter's permissive input surface into an
// ordered item slice. Unsupported shapes report !ok; unsupported elements
// inside a sequence become nil items so they fail silently per item instead
// of discarding their siblings.
func normalizeItems(input any) ([]component.Item, bool) {
	switch v := input.(type) {
	case nil:
		return nil, false
	case component.Item:
		if v == nil {
			return nil, false
		}
		return []component.Item{v}, true
	case map[string]any:
		if v == nil {
			return nil, false
		}
		return []component.Item{component.Item(v)}, true
	case []component.Item:
		return v, true
	case []map[string]any:
		items := make([]component.Item, 0, len(v))
		for _, m := range v {
			items = append(items, component.Item(m))
		}
		return items, true
	case []any:
		items := make([]component.Item, 0, len(v))
		for _, elem := range v {
			switch m := elem.(type) {
			case component.Item:
				items = append(items, m)
			case map[string]any:
				items = append(items, component.Item(m))
			default:
				items = append(items, nil)
			}
		}
		return items, true
	default:
		return nil, false
	}
}
