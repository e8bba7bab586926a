// Package artifact defines the rendered output files and the writer that
// persists them into the output directory.
package artifact

// Artifact is one rendered output file, held in memory until the writer
// persists it. Renderers produce artifacts; only the writer touches disk.
type Artifact struct {
	Name string
	Body []byte
}
