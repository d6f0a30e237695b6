package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/docker/docker/client"

	"webmanifest/internal/htmlhead"
	"webmanifest/internal/iconprobe"
	"webmanifest/internal/manifest"
	"webmanifest/internal/source"
)

// run assembles the manifest input in order of increasing precedence
// (files, container labels, probed icons, positional arguments), renders
// the manifest and writes the requested outputs.
func run(ctx context.Context, opts *options, stdout io.Writer) error {
	var layers []manifest.Values

	for _, path := range opts.ConfigFiles {
		values, err := source.ReadFile(path)
		if err != nil {
			return err
		}
		slog.Debug("Loaded manifest input", "path", path, "keys", len(values))
		layers = append(layers, values)
	}

	if opts.Container != "" {
		values, err := containerValues(ctx, opts.Container, opts.LabelPrefix)
		if err != nil {
			return err
		}
		slog.Debug("Loaded container labels", "container", opts.Container, "keys", len(values))
		layers = append(layers, values)
	}

	if len(opts.IconFiles) > 0 {
		icons, err := iconprobe.ProbeAll(opts.IconFiles, opts.IconBaseURL)
		if err != nil {
			return err
		}
		layers = append(layers, manifest.Values{manifest.Icons.String(): icons})
	}

	overrides, err := source.ParseArgs(opts.Args)
	if err != nil {
		return err
	}

	var genOpts []manifest.Option
	if opts.Strict {
		genOpts = append(genOpts, manifest.WithStrictValues())
	}
	generator, err := manifest.NewGenerator(source.Merge(layers...), genOpts...)
	if err != nil {
		return fmt.Errorf("invalid manifest input: %w", err)
	}

	doc, err := generator.Render(overrides)
	if err != nil {
		return fmt.Errorf("invalid manifest override: %w", err)
	}

	content, err := encode(doc, opts.Format, opts.Indent)
	if err != nil {
		return err
	}
	if err := writeOutput(opts.Output, content, stdout); err != nil {
		return err
	}
	slog.Info("Generated manifest", "output", outputName(opts.Output), "format", opts.Format, "setFields", generator.Fields().Len())

	if opts.HeadHref != "" {
		engine, err := htmlhead.NewTemplateEngine()
		if err != nil {
			return fmt.Errorf("failed to create template engine: %w", err)
		}
		head, err := engine.Render(doc, opts.HeadHref)
		if err != nil {
			return err
		}
		if err := writeOutput(opts.HeadOutput, head, stdout); err != nil {
			return err
		}
		slog.Info("Generated head snippet", "output", outputName(opts.HeadOutput))
	}

	return nil
}

func containerValues(ctx context.Context, containerID, prefix string) (manifest.Values, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}
	defer cli.Close()

	return source.FromContainer(ctx, cli, containerID, prefix)
}

func encode(doc manifest.Document, format, indent string) ([]byte, error) {
	switch format {
	case "yaml":
		return doc.YAML()
	default:
		out, err := doc.JSONIndent("", indent)
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
}

// writeOutput writes content to path, or to stdout when path is empty or "-"
func writeOutput(path string, content []byte, stdout io.Writer) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(content)
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return os.WriteFile(path, content, 0644)
}

func outputName(path string) string {
	if path == "" || path == "-" {
		return "stdout"
	}
	return path
}
