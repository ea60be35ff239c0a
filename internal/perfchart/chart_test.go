package perfchart

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfplot/internal/baseline"
)

func decodeContext(t *testing.T, records []baseline.Record, cfg ChartConfig) (int, int) {
	t.Helper()
	dc, err := Draw(records, cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dc.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestSeriesPreservesOrder(t *testing.T) {
	records := []baseline.Record{
		{Name: "First", AvgMs: 5},
		{Name: "Second", AvgMs: 15},
		{Name: "Third", AvgMs: 2},
	}

	names, avgs := series(records)
	assert.Equal(t, []string{"First", "Second", "Third"}, names)
	assert.Equal(t, []float64{5, 15, 2}, avgs)
}

func TestSeriesMax(t *testing.T) {
	assert.Equal(t, 20.0, seriesMax([]float64{10, 20, 5}))
	assert.Equal(t, 0.0, seriesMax(nil))
	assert.Equal(t, 0.0, seriesMax([]float64{}))
	assert.Equal(t, 0.0, seriesMax([]float64{-4, -1}))
}

func TestAnnotationOffsetEmptySeries(t *testing.T) {
	// An empty series must not blow up the offset computation.
	assert.Equal(t, 0.0, annotationOffset(nil))
	assert.Equal(t, 2.0, annotationOffset([]float64{50, 200, 120}))
}

func TestTickStep(t *testing.T) {
	assert.Equal(t, 0.2, tickStep(1))
	assert.Equal(t, 20.0, tickStep(100))
	assert.Equal(t, 50.0, tickStep(230))
	assert.InDelta(t, 500.0, tickStep(2400), 1e-9)
}

func TestDrawProducesImage(t *testing.T) {
	records := []baseline.Record{
		{Name: "A", AvgMs: 10},
		{Name: "B", AvgMs: 20},
	}

	w, h := decodeContext(t, records, ChartConfig{Width: 320, Height: 160})
	assert.Equal(t, 320, w)
	assert.Equal(t, 160, h)
}

func TestDrawDefaultDimensions(t *testing.T) {
	w, h := decodeContext(t, []baseline.Record{{Name: "A", AvgMs: 1}}, ChartConfig{})
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
}

func TestDrawEmptyRecords(t *testing.T) {
	// Zero bars is degenerate but valid: frame, title and axis only.
	w, h := decodeContext(t, nil, ChartConfig{Width: 320, Height: 160})
	assert.Equal(t, 320, w)
	assert.Equal(t, 160, h)
}

func TestDrawNegativeAndZeroAverages(t *testing.T) {
	records := []baseline.Record{
		{Name: "below zero", AvgMs: -12},
		{Name: "nothing", AvgMs: 0},
	}

	_, err := Draw(records, ChartConfig{Width: 320, Height: 160})
	require.NoError(t, err)
}

func TestDrawManyRecordsCyclesPalette(t *testing.T) {
	// More records than palette entries; rendering must not index past it.
	var records []baseline.Record
	for i := 0; i < len(palette)*3; i++ {
		records = append(records, baseline.Record{Name: "scenario", AvgMs: float64(i + 1)})
	}

	_, err := Draw(records, ChartConfig{Width: 480, Height: 360})
	require.NoError(t, err)
}

func TestDrawLongNamesCapMargin(t *testing.T) {
	records := []baseline.Record{
		{Name: "an unreasonably long scenario name that would otherwise consume the whole canvas width", AvgMs: 40},
	}

	_, err := Draw(records, ChartConfig{Width: 240, Height: 240})
	require.NoError(t, err)
}

func TestDrawRejectsUnusableDimensions(t *testing.T) {
	_, err := Draw(nil, ChartConfig{Width: 40, Height: 20})
	require.Error(t, err)
}
