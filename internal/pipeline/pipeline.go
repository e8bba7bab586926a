// Package pipeline orchestrates the load-summarize-render-write run that
// produces the atlas artifacts.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/chicago-health-atlas/internal/artifact"
	"github.com/couchcryptid/chicago-health-atlas/internal/domain"
	"github.com/couchcryptid/chicago-health-atlas/internal/observability"
)

// Loader produces the joined dataset from the configured sources.
type Loader interface {
	Load() (domain.Dataset, error)
}

// RenderFunc turns the dataset and its summary into one artifact.
type RenderFunc func(domain.Dataset, domain.Summary) (artifact.Artifact, error)

// Stage names one renderer in the run.
type Stage struct {
	Name   string
	Render RenderFunc
}

// Writer persists the rendered artifacts.
type Writer interface {
	WriteAll([]artifact.Artifact) error
}

// Pipeline runs every stage against a single loaded dataset.
type Pipeline struct {
	loader  Loader
	stages  []Stage
	writer  Writer
	logger  *slog.Logger
	metrics *observability.Metrics
	topN    int
}

// New creates a Pipeline with the given stages and observability.
func New(l Loader, stages []Stage, w Writer, logger *slog.Logger, metrics *observability.Metrics, topN int) *Pipeline {
	return &Pipeline{
		loader:  l,
		stages:  stages,
		writer:  w,
		logger:  logger,
		metrics: metrics,
		topN:    topN,
	}
}

// Result holds everything a run produced.
type Result struct {
	Dataset   domain.Dataset
	Summary   domain.Summary
	Artifacts []artifact.Artifact
}

// Run loads the dataset, renders every stage, and writes the artifacts. A
// load failure aborts the run before any renderer executes; a stage failure
// aborts before anything is written.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	p.metrics.RunsTotal.Inc()

	result, err := p.run(ctx)
	if err != nil {
		p.metrics.RunFailures.Inc()
		return nil, err
	}
	return result, nil
}

func (p *Pipeline) run(ctx context.Context) (*Result, error) {
	ds, err := p.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	p.metrics.DatasetRows.Set(float64(len(ds)))
	p.logger.Info("dataset loaded", "areas", len(ds))

	sum := domain.Summarize(ds, p.topN)

	artifacts := make([]artifact.Artifact, 0, len(p.stages))
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run cancelled before %s: %w", stage.Name, err)
		}

		start := time.Now()
		a, err := stage.Render(ds, sum)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", stage.Name, err)
		}
		p.metrics.RenderDuration.WithLabelValues(stage.Name).Observe(time.Since(start).Seconds())
		p.metrics.ArtifactsRendered.WithLabelValues(stage.Name).Inc()
		p.metrics.ArtifactBytes.WithLabelValues(stage.Name).Set(float64(len(a.Body)))
		p.logger.Debug("stage rendered", "stage", stage.Name, "artifact", a.Name, "bytes", len(a.Body))

		artifacts = append(artifacts, a)
	}

	if err := p.writer.WriteAll(artifacts); err != nil {
		return nil, fmt.Errorf("write artifacts: %w", err)
	}
	p.logger.Info("run complete", "artifacts", len(artifacts))

	return &Result{Dataset: ds, Summary: sum, Artifacts: artifacts}, nil
}
