package source

import (
	"context"
	"fmt"
	"strings"

	dockercontainer "github.com/docker/docker/api/types/container"

	"webmanifest/internal/manifest"
)

// DefaultLabelPrefix is the label namespace read by FromLabels when no
// prefix is given:
//
//	webmanifest.name         -> name
//	webmanifest.short_name   -> short_name
//	webmanifest.theme_color  -> theme_color
//	webmanifest.display      -> display
const DefaultLabelPrefix = "webmanifest."

// FromLabels collects prefixed labels as manifest values. Labels with an
// empty value are skipped. Only string fields can be expressed as labels;
// icon and related application labels are passed through as strings and
// rejected when applied.
func FromLabels(labels map[string]string, prefix string) manifest.Values {
	if prefix == "" {
		prefix = DefaultLabelPrefix
	}
	values := make(manifest.Values)
	for key, val := range labels {
		field, ok := strings.CutPrefix(key, prefix)
		if !ok || field == "" || val == "" {
			continue
		}
		values[field] = val
	}
	return values
}

// Inspector is the part of the Docker API client used to read labels.
// *client.Client satisfies it.
type Inspector interface {
	ContainerInspect(ctx context.Context, containerID string) (dockercontainer.InspectResponse, error)
}

// FromContainer reads manifest values from the labels of a container
func FromContainer(ctx context.Context, inspector Inspector, containerID, prefix string) (manifest.Values, error) {
	container, err := inspector.ContainerInspect(ctx, containerID)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect container: %w", err)
	}
	if container.Config == nil {
		return manifest.Values{}, nil
	}
	return FromLabels(container.Config.Labels, prefix), nil
}
