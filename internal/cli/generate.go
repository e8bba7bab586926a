package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/chicago-health-atlas/internal/artifact"
	"github.com/couchcryptid/chicago-health-atlas/internal/domain"
	"github.com/couchcryptid/chicago-health-atlas/internal/loader"
	"github.com/couchcryptid/chicago-health-atlas/internal/observability"
	"github.com/couchcryptid/chicago-health-atlas/internal/pipeline"
	"github.com/couchcryptid/chicago-health-atlas/internal/render"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Render the full artifact set into the output directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runGenerate(ctx, cmd)
		},
	}
}

func runGenerate(ctx context.Context, cmd *cobra.Command) error {
	metrics := observability.NewMetrics()

	src := loader.FileLoader{
		HealthPath: cfg.HealthCSVPath,
		GeoPath:    cfg.GeoJSONPath,
		Metric:     cfg.Metric,
	}
	writer := artifact.NewWriter(cfg.OutDir, logger)

	p := pipeline.New(src, stages(cfg.Metric, cfg.HistBins), writer, logger, metrics, cfg.TopN)

	result, err := p.Run(ctx)
	if err != nil {
		return err
	}

	printSummary(cmd, result)
	return nil
}

// stages wires every renderer into the pipeline in output order.
func stages(metric string, bins int) []pipeline.Stage {
	return []pipeline.Stage{
		{Name: "poster", Render: func(ds domain.Dataset, sum domain.Summary) (artifact.Artifact, error) {
			return render.Poster(ds, sum, metric)
		}},
		{Name: "webmap", Render: func(ds domain.Dataset, sum domain.Summary) (artifact.Artifact, error) {
			return render.WebMap(ds, sum, metric)
		}},
		{Name: "bar_chart", Render: func(_ domain.Dataset, sum domain.Summary) (artifact.Artifact, error) {
			return render.BarChart(sum, metric)
		}},
		{Name: "histogram", Render: func(ds domain.Dataset, _ domain.Summary) (artifact.Artifact, error) {
			return render.Histogram(ds, metric, bins)
		}},
		{Name: "table", Render: func(_ domain.Dataset, sum domain.Summary) (artifact.Artifact, error) {
			return render.TopTable(sum, metric)
		}},
		{Name: "story", Render: func(_ domain.Dataset, sum domain.Summary) (artifact.Artifact, error) {
			return render.Story(sum, metric)
		}},
		{Name: "workbook", Render: func(ds domain.Dataset, sum domain.Summary) (artifact.Artifact, error) {
			return render.Workbook(ds, sum, metric)
		}},
	}
}

func printSummary(cmd *cobra.Command, result *pipeline.Result) {
	out := cmd.OutOrStdout()

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rank", "Community Area", cfg.Metric})
	for i, area := range result.Summary.Top {
		t.AppendRow(table.Row{i + 1, area.Name, fmt.Sprintf("%.1f", area.Rate)})
	}
	t.Render()

	fmt.Fprintf(out, "\n%d community areas, mean %.2f\n", result.Summary.Count, result.Summary.Mean)
	fmt.Fprintln(out, "All files generated successfully:")
	for _, a := range result.Artifacts {
		fmt.Fprintf(out, "- %s\n", a.Name)
	}
}
