package render

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/couchcryptid/chicago-health-atlas/internal/artifact"
)

// pngArtifact encodes a plot as a PNG artifact. Encoding goes through a
// buffer so renderers never touch the filesystem.
func pngArtifact(p *plot.Plot, w, h vg.Length, name string) (artifact.Artifact, error) {
	wt, err := p.WriterTo(w, h, "png")
	if err != nil {
		return artifact.Artifact{}, fmt.Errorf("render %s: %w", name, err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return artifact.Artifact{}, fmt.Errorf("encode %s: %w", name, err)
	}
	return artifact.Artifact{Name: name, Body: buf.Bytes()}, nil
}
