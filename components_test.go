package components_test

import (
	"context"
	"testing"

	components "github.com/goliatone/go-components"
	"github.com/goliatone/go-components/pkg/testsupport"
)

func TestLoad_EndToEnd(t *testing.T) {
	fsys := testsupport.ComponentDir(t, map[string]string{
		"components/callout.tpl": testsupport.ComponentFile(t,
			map[string]any{"name": "Callout", "heading": "Default"},
			"<aside>{{ heading }}</aside>",
		),
	})

	p, err := components.Load(context.Background(), fsys, "components/**/*.tpl")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	got := p.RenderComponent(context.Background(), components.Item{
		"type":    "callout",
		"heading": "Hi",
	})
	if got != "<aside>Hi</aside>" {
		t.Fatalf("rendered = %q", got)
	}

	if got := p.RenderComponent(context.Background(), components.Item{"type": "missing-type"}); got != "" {
		t.Fatalf("expected empty string for unknown type, got %q", got)
	}
}

func TestSlugify(t *testing.T) {
	if got := components.Slugify("Text and Image"); got != "text-and-image" {
		t.Fatalf("Slugify = %q", got)
	}
}
