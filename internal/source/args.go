package source

import (
	"fmt"
	"strings"

	"webmanifest/internal/manifest"
)

// ArgError occurs when a command line argument is not a key=value pair
// or a record argument has too many parts.
type ArgError struct {
	Arg    string
	Reason string
}

// Error implements the error interface.
func (e *ArgError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Arg, e.Reason)
}

// Record keys accepted by ParseArgs. Each occurrence appends one record.
const (
	IconArg               = "icon"
	RelatedApplicationArg = "related_application"
)

// ParseArgs parses key=value arguments into manifest values.
//
//	name="My App" short_name=App theme_color=336699
//	icon=/icons/192.png|192x192|image/png
//	related_application=play|https://play.google.com/store/apps/details?id=app|app
//
// Keys are passed through unchecked; unknown names are reported when the
// values are applied to a FieldSet.
func ParseArgs(args []string) (manifest.Values, error) {
	values := make(manifest.Values)
	var icons []manifest.Icon
	var apps []manifest.RelatedApplication

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, &ArgError{Arg: arg, Reason: "expected key=value"}
		}

		switch key {
		case IconArg:
			parts, err := splitRecord(arg, value, 3)
			if err != nil {
				return nil, err
			}
			icons = append(icons, manifest.Icon{Src: parts[0], Sizes: parts[1], Type: parts[2]})
		case RelatedApplicationArg:
			parts, err := splitRecord(arg, value, 3)
			if err != nil {
				return nil, err
			}
			apps = append(apps, manifest.RelatedApplication{Platform: parts[0], URL: parts[1], ID: parts[2]})
		default:
			values[key] = value
		}
	}

	if icons != nil {
		values[manifest.Icons.WireName()] = icons
	}
	if apps != nil {
		values[manifest.RelatedApplications.WireName()] = apps
	}
	return values, nil
}

// splitRecord splits a "|" separated record value into exactly n parts,
// padding missing trailing parts with empty strings
func splitRecord(arg, value string, n int) ([]string, error) {
	parts := strings.Split(value, "|")
	if len(parts) > n {
		return nil, &ArgError{Arg: arg, Reason: fmt.Sprintf("expected at most %d |-separated parts", n)}
	}
	for len(parts) < n {
		parts = append(parts, "")
	}
	return parts, nil
}
