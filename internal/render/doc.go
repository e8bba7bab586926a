// Package render turns the joined dataset into report artifacts: the
// choropleth poster, the interactive Leaflet map, the bar chart and histogram,
// the top-10 table, the Excel workbook, and the narrative story. Renderers are
// pure with respect to the filesystem; they return in-memory artifacts and
// leave persistence to the artifact writer.
package render

// Artifact file names in the output directory.
const (
	PosterName    = "chicago_health_poster.png"
	WebMapName    = "chicago_health_map.html"
	BarChartName  = "bar_top10.png"
	HistogramName = "hist_metric.png"
	TableName     = "table_top10.csv"
	StoryName     = "story.html"
	WorkbookName  = "chicago_health_atlas.xlsx"
)
