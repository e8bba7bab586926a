package pipeline_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/chicago-health-atlas/internal/artifact"
	"github.com/couchcryptid/chicago-health-atlas/internal/domain"
	"github.com/couchcryptid/chicago-health-atlas/internal/observability"
	"github.com/couchcryptid/chicago-health-atlas/internal/pipeline"
)

// --- mocks ---

type mockLoader struct {
	ds  domain.Dataset
	err error
}

func (m mockLoader) Load() (domain.Dataset, error) {
	return m.ds, m.err
}

type mockWriter struct {
	written []artifact.Artifact
	err     error
}

func (m *mockWriter) WriteAll(artifacts []artifact.Artifact) error {
	if m.err != nil {
		return m.err
	}
	m.written = append(m.written, artifacts...)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDataset() domain.Dataset {
	return domain.Dataset{
		{ID: 1, Name: "Rogers Park", Rate: 8.8},
		{ID: 2, Name: "West Ridge", Rate: 8.4},
		{ID: 3, Name: "Uptown", Rate: 10.5},
	}
}

func staticStage(name string) pipeline.Stage {
	return pipeline.Stage{
		Name: name,
		Render: func(_ domain.Dataset, _ domain.Summary) (artifact.Artifact, error) {
			return artifact.Artifact{Name: name + ".out", Body: []byte(name)}, nil
		},
	}
}

// --- tests ---

func TestPipeline_Run(t *testing.T) {
	writer := &mockWriter{}
	stages := []pipeline.Stage{staticStage("poster"), staticStage("story")}

	p := pipeline.New(mockLoader{ds: testDataset()}, stages, writer, discardLogger(), observability.NewMetricsForTesting(), 2)

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.Dataset, 3)
	assert.Equal(t, "Uptown", result.Summary.MaxArea.Name)
	require.Len(t, result.Artifacts, 2)
	assert.Equal(t, "poster.out", result.Artifacts[0].Name)
	if diff := cmp.Diff(result.Artifacts, writer.written); diff != "" {
		t.Errorf("written artifacts mismatch (-want +got):\n%s", diff)
	}
}

func TestPipeline_Run_LoadErrorSkipsRenderers(t *testing.T) {
	loadErr := errors.New("boom")
	rendered := false
	stages := []pipeline.Stage{{
		Name: "poster",
		Render: func(_ domain.Dataset, _ domain.Summary) (artifact.Artifact, error) {
			rendered = true
			return artifact.Artifact{}, nil
		},
	}}
	writer := &mockWriter{}

	p := pipeline.New(mockLoader{err: loadErr}, stages, writer, discardLogger(), observability.NewMetricsForTesting(), 2)

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, loadErr)
	assert.False(t, rendered, "renderer ran after a load failure")
	assert.Empty(t, writer.written)
}

func TestPipeline_Run_StageErrorSkipsWrite(t *testing.T) {
	stageErr := errors.New("render exploded")
	stages := []pipeline.Stage{
		staticStage("poster"),
		{Name: "story", Render: func(_ domain.Dataset, _ domain.Summary) (artifact.Artifact, error) {
			return artifact.Artifact{}, stageErr
		}},
	}
	writer := &mockWriter{}

	p := pipeline.New(mockLoader{ds: testDataset()}, stages, writer, discardLogger(), observability.NewMetricsForTesting(), 2)

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, stageErr)
	assert.Contains(t, err.Error(), "render story")
	assert.Empty(t, writer.written)
}

func TestPipeline_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	writer := &mockWriter{}
	p := pipeline.New(mockLoader{ds: testDataset()}, []pipeline.Stage{staticStage("poster")}, writer, discardLogger(), observability.NewMetricsForTesting(), 2)

	_, err := p.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, writer.written)
}

func TestPipeline_Run_WriteError(t *testing.T) {
	writeErr := errors.New("disk full")
	writer := &mockWriter{err: writeErr}

	p := pipeline.New(mockLoader{ds: testDataset()}, []pipeline.Stage{staticStage("poster")}, writer, discardLogger(), observability.NewMetricsForTesting(), 2)

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, writeErr)
}
