package render

import "context"

// Engine turns raw template source plus a data context into output text.
// Engines render source strings, not named files; component fragments arrive
// already loaded.
type Engine interface {
	Name() string
	Render(ctx context.Context, source string, data map[string]any) (string, error)
}
