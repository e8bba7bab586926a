package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/couchcryptid/chicago-health-atlas/internal/artifact"
	"github.com/couchcryptid/chicago-health-atlas/internal/domain"
)

var storyTmpl = template.Must(template.New("story").Parse(`<h1>Chicago Public Health Story – {{.Metric}}</h1>
<p>The map above highlights how the <strong>{{.Metric}}</strong> indicator varies across Chicago’s {{.Count}} community areas.</p>

<p>The citywide average is <strong>{{printf "%.2f" .Mean}}</strong>, but some communities face significantly higher challenges.</p>

<p>The highest value is found in <strong>{{.MaxArea}}</strong>, reaching <strong>{{printf "%.2f" .Max}}</strong>.
This suggests potential disparities in prenatal care, maternal health services, and overall socio-economic conditions.</p>

<p>At the other end, <strong>{{.MinArea}}</strong> records the lowest value at <strong>{{printf "%.2f" .Min}}</strong>.</p>

<p>The bar charts and histogram provide additional context, showing which neighborhoods are most affected and how this indicator is distributed across the city.</p>

<p>Use this story along with the poster and interactive map to support reporting, presentations, or policy discussion.</p>

<p><em>Generated on {{.Generated}}.</em></p>
`))

type storyData struct {
	Metric    string
	Count     int
	Mean      float64
	Max       float64
	MaxArea   string
	Min       float64
	MinArea   string
	Generated string
}

// Story renders the narrative companion page for the maps and charts.
func Story(sum domain.Summary, metric string) (artifact.Artifact, error) {
	data := storyData{
		Metric:    metric,
		Count:     sum.Count,
		Mean:      sum.Mean,
		Max:       sum.Max,
		MaxArea:   sum.MaxArea.Name,
		Min:       sum.Min,
		MinArea:   sum.MinArea.Name,
		Generated: clock.Now().Format("January 2, 2006"),
	}

	var buf bytes.Buffer
	if err := storyTmpl.Execute(&buf, data); err != nil {
		return artifact.Artifact{}, fmt.Errorf("render story: %w", err)
	}
	return artifact.Artifact{Name: StoryName, Body: buf.Bytes()}, nil
}
