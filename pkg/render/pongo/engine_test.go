package pongo_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-components/pkg/render/pongo"
)

func TestEngine_RendersMergedContext(t *testing.T) {
	engine, err := pongo.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.Render(context.Background(), `<h2>{{ heading }}</h2>`, map[string]any{
		"heading": "Hi",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<h2>Hi</h2>" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEngine_CachesParsedFragments(t *testing.T) {
	engine, err := pongo.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	source := `{{ n }}`
	for i, want := range []string{"1", "2"} {
		out, err := engine.Render(context.Background(), source, map[string]any{"n": i + 1})
		if err != nil {
			t.Fatalf("render %d: %v", i, err)
		}
		if out != want {
			t.Fatalf("render %d = %q, want %q", i, out, want)
		}
	}
}

func TestEngine_ParseErrorSurfaces(t *testing.T) {
	engine, err := pongo.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	_, err = engine.Render(context.Background(), `{% if %}`, nil)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "pongo:") {
		t.Fatalf("expected package-prefixed error, got %v", err)
	}
}

func TestEngine_HonoursCancelledContext(t *testing.T) {
	engine, err := pongo.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := engine.Render(ctx, `ok`, nil); err == nil {
		t.Fatal("expected context error")
	}
}

func TestEngine_WithGlobals(t *testing.T) {
	engine, err := pongo.New(pongo.WithGlobals(map[string]any{"site": "acme"}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.Render(context.Background(), `{{ site }}/{{ page }}`, map[string]any{"page": "home"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "acme/home" {
		t.Fatalf("unexpected output %q", out)
	}
}
