package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-components/pkg/assets"
	"github.com/goliatone/go-components/pkg/component"
)

func TestBucket_OrderAndEmptyFragments(t *testing.T) {
	bucket := assets.NewBucket(assets.KindCSS)
	bucket.Add(".a {}")
	bucket.Add("")
	bucket.Add("   ")
	bucket.Add(".b {}")

	if bucket.Len() != 2 {
		t.Fatalf("expected 2 fragments, got %d", bucket.Len())
	}
	if got := bucket.Bundle(); got != ".a {}\n.b {}" {
		t.Fatalf("bundle = %q", got)
	}
}

func TestBundler_CollectFromPreservesCollectionOrder(t *testing.T) {
	collection := component.NewCollection(
		component.Definition{DisplayName: "Callout", CSS: ".callout {}", JS: "callout();"},
		component.Definition{DisplayName: "Hero", CSS: ".hero {}"},
	)

	bundler := assets.NewBundler()
	bundler.CollectFrom(collection)

	if got := bundler.CSS().Bundle(); got != ".callout {}\n.hero {}" {
		t.Fatalf("css bundle = %q", got)
	}
	if got := bundler.JS().Bundle(); got != "callout();" {
		t.Fatalf("js bundle = %q", got)
	}
}

func TestBundler_WriteEmitsOneArtifactPerKind(t *testing.T) {
	cssDir := filepath.Join(t.TempDir(), "css")
	jsDir := filepath.Join(t.TempDir(), "js")

	bundler := assets.NewBundler(assets.WithCSSDir(cssDir), assets.WithJSDir(jsDir))
	bundler.CSS().Add(".a {}")
	bundler.JS().Add("a();")

	if err := bundler.Write(); err != nil {
		t.Fatalf("write: %v", err)
	}

	css, err := os.ReadFile(filepath.Join(cssDir, assets.CSSBundleName))
	if err != nil {
		t.Fatalf("read css bundle: %v", err)
	}
	if string(css) != ".a {}" {
		t.Fatalf("css artifact = %q", css)
	}

	js, err := os.ReadFile(filepath.Join(jsDir, assets.JSBundleName))
	if err != nil {
		t.Fatalf("read js bundle: %v", err)
	}
	if string(js) != "a();" {
		t.Fatalf("js artifact = %q", js)
	}
}

func TestBundler_WriteSkipsEmptyBuckets(t *testing.T) {
	dir := t.TempDir()

	bundler := assets.NewBundler(assets.WithCSSDir(dir), assets.WithJSDir(dir))
	if err := bundler.Write(); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, assets.CSSBundleName)); !os.IsNotExist(err) {
		t.Fatal("empty css bucket must not produce an artifact")
	}
	if _, err := os.Stat(filepath.Join(dir, assets.JSBundleName)); !os.IsNotExist(err) {
		t.Fatal("empty js bucket must not produce an artifact")
	}
}

func TestBundler_WriteSkipsUnconfiguredDirs(t *testing.T) {
	bundler := assets.NewBundler()
	bundler.CSS().Add(".a {}")

	if err := bundler.Write(); err != nil {
		t.Fatalf("write without dirs should be a no-op, got %v", err)
	}
}
