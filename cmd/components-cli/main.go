package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	components "github.com/goliatone/go-components"
	"github.com/goliatone/go-components/pkg/assets"
	"github.com/goliatone/go-components/pkg/component"
	"github.com/goliatone/go-components/pkg/pipeline"
)

func main() {
	dir := flag.String("dir", ".", "root directory holding component files")
	glob := flag.String("glob", "", "component discovery glob (default components/**/*.tpl)")
	typeName := flag.String("type", "", "component type to render (prompts when empty)")
	data := flag.String("data", "", "item fields as inline JSON or a path to a JSON file")
	dialect := flag.String("dialect", "", "template dialect (default from config)")
	output := flag.String("output", "", "output file (stdout if empty)")
	bundle := flag.Bool("bundle", false, "write CSS/JS asset bundles and exit")
	cssDir := flag.String("css-dir", "", "CSS bundle output directory")
	jsDir := flag.String("js-dir", "", "JS bundle output directory")
	configPath := flag.String("config", "", "optional YAML configuration file")
	flag.Parse()

	ctx := context.Background()

	options := []components.Option{
		components.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
	}

	resolvedGlob := *glob
	if *configPath != "" {
		cfg, err := pipeline.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		options = append(options, cfg.Options()...)
		if resolvedGlob == "" {
			resolvedGlob = cfg.Glob
		}
	}
	if *cssDir != "" || *jsDir != "" {
		options = append(options, components.WithBundler(assets.NewBundler(
			assets.WithCSSDir(*cssDir),
			assets.WithJSDir(*jsDir),
		)))
	}

	p, err := components.Load(ctx, os.DirFS(*dir), resolvedGlob, options...)
	if err != nil {
		log.Fatalf("Failed to load components: %v", err)
	}

	if *bundle {
		bundler := p.Bundler()
		if bundler == nil {
			log.Fatal("No bundle output configured; pass -css-dir/-js-dir or a config file")
		}
		if err := bundler.Write(); err != nil {
			log.Fatalf("Failed to write bundles: %v", err)
		}
		fmt.Println("Asset bundles written")
		return
	}

	target := strings.TrimSpace(*typeName)
	if target == "" {
		target, err = pickComponent(p.Collection())
		if err != nil {
			log.Fatalf("Failed to pick component: %v", err)
		}
	}

	item, err := parseItem(*data)
	if err != nil {
		log.Fatalf("Invalid -data payload: %v", err)
	}
	item[component.TypeField] = target

	rendered := p.RenderComponent(ctx, item, *dialect)
	if rendered == "" {
		log.Fatalf("Component %q produced no output; see diagnostics above", target)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Component written to %s\n", *output)
	} else {
		fmt.Println(rendered)
	}
}

func pickComponent(collection *component.Collection) (string, error) {
	slugs := collection.Slugs()
	if len(slugs) == 0 {
		return "", fmt.Errorf("no components discovered")
	}

	var picked string
	prompt := &survey.Select{
		Message: "Component to render:",
		Options: slugs,
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return "", err
	}
	return picked, nil
}

// parseItem accepts inline JSON or a path to a JSON file. Empty input means
// an item with only the type field.
func parseItem(raw string) (component.Item, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return component.Item{}, nil
	}

	payload := []byte(raw)
	if !strings.HasPrefix(raw, "{") {
		data, err := os.ReadFile(raw)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", raw, err)
		}
		payload = data
	}

	item := component.Item{}
	if err := json.Unmarshal(payload, &item); err != nil {
		return nil, err
	}
	return item, nil
}
