package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"webmanifest/internal/source"
)

// options holds every knob of the command. Environment variables provide
// the defaults; flags override them.
type options struct {
	ConfigFiles []string `env:"WEBMANIFEST_CONFIG" envSeparator:","`
	Container   string   `env:"WEBMANIFEST_CONTAINER"`
	LabelPrefix string   `env:"WEBMANIFEST_LABEL_PREFIX"`
	IconFiles   []string `env:"WEBMANIFEST_ICONS" envSeparator:","`
	IconBaseURL string   `env:"WEBMANIFEST_ICON_BASE_URL"`
	Format      string   `env:"WEBMANIFEST_FORMAT" envDefault:"json"`
	Indent      string   `env:"WEBMANIFEST_INDENT"`
	Strict      bool     `env:"WEBMANIFEST_STRICT"`
	HeadHref    string   `env:"WEBMANIFEST_HEAD"`
	HeadOutput  string   `env:"WEBMANIFEST_HEAD_OUTPUT"`
	Output      string   `env:"WEBMANIFEST_OUTPUT"`
	Debug       bool     `env:"WEBMANIFEST_DEBUG"`

	Args []string // positional key=value overrides
}

// parseOptions loads environment defaults, then parses command line flags
func parseOptions(args []string) (*options, error) {
	opts := &options{}
	if err := env.Parse(opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if opts.LabelPrefix == "" {
		opts.LabelPrefix = source.DefaultLabelPrefix
	}

	fs := flag.NewFlagSet("webmanifest", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	configFiles := fs.String("config", strings.Join(opts.ConfigFiles, ","), "Comma-separated manifest input files (.json, .webmanifest, .yaml, .yml, .toml)")
	fs.StringVar(&opts.Container, "container", opts.Container, "Docker container whose labels provide manifest fields")
	fs.StringVar(&opts.LabelPrefix, "label-prefix", opts.LabelPrefix, "Container label prefix")
	iconFiles := fs.String("icon", strings.Join(opts.IconFiles, ","), "Comma-separated icon files to probe for sizes and type")
	fs.StringVar(&opts.IconBaseURL, "icon-base-url", opts.IconBaseURL, "URL prefix for probed icon src")
	fs.StringVar(&opts.Format, "format", opts.Format, "Output format: json or yaml")
	fs.StringVar(&opts.Indent, "indent", opts.Indent, "JSON indentation string (compact when empty)")
	fs.BoolVar(&opts.Strict, "strict", opts.Strict, "Reject dir, display and orientation values outside their legal lists")
	fs.StringVar(&opts.HeadHref, "head", opts.HeadHref, "Also render an HTML head snippet linking to this manifest URL")
	fs.StringVar(&opts.HeadOutput, "head-output", opts.HeadOutput, "Head snippet output file (stdout when empty)")
	fs.StringVar(&opts.Output, "output", opts.Output, "Manifest output file (stdout when empty or -)")
	fs.BoolVar(&opts.Debug, "debug", opts.Debug, "Enable debug mode")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.ConfigFiles = splitList(*configFiles)
	opts.IconFiles = splitList(*iconFiles)
	opts.Args = fs.Args()

	switch opts.Format {
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("unsupported output format %q (want json or yaml)", opts.Format)
	}
	return opts, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func printUsage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "webmanifest - Generate a web application manifest")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  webmanifest [flags] [key=value ...]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fs.PrintDefaults()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Keys (wire or camel-case names):")
	fmt.Fprintln(out, "  name, short_name, description, start_url, scope, display, orientation,")
	fmt.Fprintln(out, "  dir, lang, background_color, theme_color, prefer_related_applications")
	fmt.Fprintln(out, "  icon=src|sizes|type                       (repeatable)")
	fmt.Fprintln(out, "  related_application=platform|url|id       (repeatable)")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Example:")
	fmt.Fprintln(out, "  webmanifest -icon icons/192.png -icon-base-url /icons name=\"My App\" short_name=App display=standalone")
}
