package loader_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-components/internal/loader"
)

func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		"components/callout.tpl": &fstest.MapFile{Data: []byte(strings.Join([]string{
			"---",
			"name: Callout",
			"heading: Default",
			"css: \".callout { border: 1px solid; }\"",
			"---",
			"<aside>{{ heading }}</aside>",
		}, "\n"))},
		"components/cards/text-and-image.tpl": &fstest.MapFile{Data: []byte(strings.Join([]string{
			"---",
			"name: Text and Image",
			"alt: \"\"",
			"js: \"console.log('card');\"",
			"---",
			"<figure>{{ image }}</figure>",
		}, "\n"))},
		"components/bare.tpl": &fstest.MapFile{
			Data: []byte("<div>no frontmatter</div>"),
		},
		"content/ignored.tpl": &fstest.MapFile{
			Data: []byte("outside the component glob"),
		},
	}
}

func TestLoad_DiscoversAndParses(t *testing.T) {
	collection, err := loader.Load(fixtureFS(), "components/**/*.tpl")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if collection.Len() != 3 {
		t.Fatalf("expected 3 definitions, got %d", collection.Len())
	}

	def, ok := collection.Match("callout")
	if !ok {
		t.Fatal("expected callout to load")
	}
	if def.DisplayName != "Callout" {
		t.Fatalf("display name = %q", def.DisplayName)
	}
	if diff := cmp.Diff(map[string]any{"heading": "Default"}, def.Defaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if def.Source != "<aside>{{ heading }}</aside>" {
		t.Fatalf("source = %q", def.Source)
	}
	if def.CSS == "" {
		t.Fatal("expected css fragment")
	}
	if def.Path != "components/callout.tpl" {
		t.Fatalf("path = %q", def.Path)
	}
}

func TestLoad_NestedDirectoriesAndReservedKeys(t *testing.T) {
	collection, err := loader.Load(fixtureFS(), "components/**/*.tpl")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	def, ok := collection.Match("text-and-image")
	if !ok {
		t.Fatal("expected nested component to load")
	}
	if def.JS == "" {
		t.Fatal("expected js fragment")
	}
	// Reserved keys never leak into defaults.
	for _, reserved := range []string{"name", "css", "js"} {
		if _, found := def.Defaults[reserved]; found {
			t.Fatalf("reserved key %q leaked into defaults", reserved)
		}
	}
	if diff := cmp.Diff(map[string]any{"alt": ""}, def.Defaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileWithoutFrontmatter(t *testing.T) {
	collection, err := loader.Load(fixtureFS(), "components/**/*.tpl")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	def, ok := collection.Match("bare")
	if !ok {
		t.Fatal("expected bare component to load under its file stem")
	}
	if def.Source != "<div>no frontmatter</div>" {
		t.Fatalf("source = %q", def.Source)
	}
	if len(def.Defaults) != 0 {
		t.Fatalf("expected no defaults, got %v", def.Defaults)
	}
}

func TestLoad_GlobScopesDiscovery(t *testing.T) {
	collection, err := loader.Load(fixtureFS(), "components/**/*.tpl")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := collection.Match("ignored"); ok {
		t.Fatal("files outside the glob must not load")
	}
}

func TestLoad_MalformedFrontmatterFails(t *testing.T) {
	fsys := fstest.MapFS{
		"components/broken.tpl": &fstest.MapFile{Data: []byte(strings.Join([]string{
			"---",
			"name: [unclosed",
			"---",
			"<div></div>",
		}, "\n"))},
	}

	if _, err := loader.Load(fsys, "components/**/*.tpl"); err == nil {
		t.Fatal("expected malformed frontmatter to fail the load")
	}
}

func TestLoad_DeterministicOrder(t *testing.T) {
	collection, err := loader.Load(fixtureFS(), "components/**/*.tpl")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var paths []string
	for _, def := range collection.All() {
		paths = append(paths, def.Path)
	}
	want := []string{
		"components/bare.tpl",
		"components/callout.tpl",
		"components/cards/text-and-image.tpl",
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("discovery order mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_NilFS(t *testing.T) {
	if _, err := loader.Load(nil, ""); err == nil {
		t.Fatal("expected error for nil filesystem")
	}
}
