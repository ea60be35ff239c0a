package perfchart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"

	"github.com/fogleman/gg"
	"go.uber.org/zap"

	"perfplot/internal/baseline"
	logging "perfplot/internal/infra/log"
)

const (
	DefaultWidth  = 960
	DefaultHeight = 480

	DefaultTitle  = "Performance baseline — Avg elapsed per scenario"
	DefaultXLabel = "Average elapsed (ms)"

	marginTop     = 64.0 // title band
	marginRight   = 28.0
	marginBottom  = 56.0 // tick values + axis label band
	marginLeftMin = 72.0
	labelPad      = 8.0
	tickPad       = 6.0

	titleFontSize = 17.0
	axisFontSize  = 13.0
	tickFontSize  = 11.0
	barFontSize   = 12.0

	barFillRatio = 0.62 // bar thickness as a share of its row

	// Annotations sit 1% of the series maximum past the bar end, so they
	// stay legibly separated from bars at any scale.
	annotationOffsetRatio = 0.01

	// Head-room past the longest bar keeps its annotation inside the panel.
	headroomRatio = 1.18
)

const (
	panelColor = "#e5e5e5"
	textColor  = "#333333"
	tickColor  = "#666666"
)

// Cosmetic only; repeats when there are more bars than entries.
var palette = []string{"#2b8cbe", "#7bccc4", "#a6bddb", "#d0d1e6"}

// Scalable fonts tried in order when no explicit font is configured. With
// none present gg falls back to its built-in bitmap face.
var fontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/local/share/fonts/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/Library/Fonts/Arial.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

type fontFace struct {
	path   string
	loaded bool
}

func loadChartFont(dc *gg.Context, cfg ChartConfig, size float64) fontFace {
	candidates := fontCandidates
	if cfg.FontPath != "" {
		candidates = append([]string{cfg.FontPath}, candidates...)
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := dc.LoadFontFace(path, size); err == nil {
			logging.LogDebug("loaded chart font", zap.String("path", path))
			return fontFace{path: path, loaded: true}
		}
	}
	logging.LogDebug("no scalable font found, using built-in bitmap font",
		zap.Int("paths_checked", len(candidates)))
	return fontFace{}
}

func (f fontFace) set(dc *gg.Context, size float64) {
	if f.loaded {
		dc.LoadFontFace(f.path, size)
	}
}

// series splits records into the parallel name/average sequences the chart
// is built from, preserving input order.
func series(records []baseline.Record) ([]string, []float64) {
	names := make([]string, len(records))
	avgs := make([]float64, len(records))
	for i, r := range records {
		names[i] = r.Name
		avgs[i] = r.AvgMs
	}
	return names, avgs
}

// seriesMax returns the largest average, clamped at zero. An empty or
// all-negative series yields 0 so offset and scale math never divides by
// or indexes into nothing.
func seriesMax(avgs []float64) float64 {
	max := 0.0
	for _, v := range avgs {
		if v > max {
			max = v
		}
	}
	return max
}

func annotationOffset(avgs []float64) float64 {
	return seriesMax(avgs) * annotationOffsetRatio
}

// tickStep picks a 1/2/5-series step that yields at most ~5 ticks.
func tickStep(xMax float64) float64 {
	raw := xMax / 5
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if mag*m >= raw {
			return mag * m
		}
	}
	return mag * 10
}

// Six significant digits hide the float noise accumulated by stepping.
func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Draw renders records as a horizontal bar chart, one bar per record in
// input order with the first record in the top row. The caller saves or
// encodes the returned context.
func Draw(records []baseline.Record, cfg ChartConfig) (*gg.Context, error) {
	width := cfg.Width
	if width <= 0 {
		width = DefaultWidth
	}
	height := cfg.Height
	if height <= 0 {
		height = DefaultHeight
	}
	title := cfg.Title
	if title == "" {
		title = DefaultTitle
	}
	xLabel := cfg.XLabel
	if xLabel == "" {
		xLabel = DefaultXLabel
	}

	names, avgs := series(records)

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	face := loadChartFont(dc, cfg, axisFontSize)

	// The left margin grows to fit the widest scenario name, capped at
	// half the canvas so pathological names cannot squeeze the bars out.
	face.set(dc, axisFontSize)
	marginLeft := marginLeftMin
	for _, name := range names {
		if need := 2*labelPad + measureWidth(dc, name); need > marginLeft {
			marginLeft = need
		}
	}
	if limit := float64(width) / 2; marginLeft > limit {
		marginLeft = limit
	}

	plotLeft := marginLeft
	plotRight := float64(width) - marginRight
	plotTop := marginTop
	plotBottom := float64(height) - marginBottom
	plotW := plotRight - plotLeft
	plotH := plotBottom - plotTop
	if plotW <= 0 || plotH <= 0 {
		return nil, fmt.Errorf("chart dimensions %dx%d leave no drawable area", width, height)
	}

	dc.SetHexColor(panelColor)
	dc.DrawRectangle(plotLeft, plotTop, plotW, plotH)
	dc.Fill()

	maxAvg := seriesMax(avgs)
	xMax := maxAvg * headroomRatio
	if xMax <= 0 {
		xMax = 1.0
	}

	// White grid lines on the gray panel, with tick values underneath.
	step := tickStep(xMax)
	dc.SetLineWidth(1)
	for i := 0; ; i++ {
		tick := float64(i) * step
		if tick > xMax*(1+1e-9) {
			break
		}
		x := plotLeft + tick/xMax*plotW
		dc.SetColor(color.White)
		dc.DrawLine(x, plotTop, x, plotBottom)
		dc.Stroke()

		dc.SetHexColor(tickColor)
		face.set(dc, tickFontSize)
		dc.DrawStringAnchored(formatTick(tick), x, plotBottom+tickPad, 0.5, 1)
	}

	if len(records) > 0 {
		rowH := plotH / float64(len(records))
		barH := rowH * barFillRatio
		offset := annotationOffset(avgs)

		for i := range records {
			barY := plotTop + float64(i)*rowH + (rowH-barH)/2
			yCenter := barY + barH/2

			barW := 0.0
			if avgs[i] > 0 {
				barW = avgs[i] / xMax * plotW
			}
			dc.SetHexColor(palette[i%len(palette)])
			dc.DrawRectangle(plotLeft, barY, barW, barH)
			dc.Fill()

			dc.SetHexColor(textColor)
			face.set(dc, axisFontSize)
			dc.DrawStringAnchored(names[i], plotLeft-labelPad, yCenter, 1, 0.35)

			face.set(dc, barFontSize)
			annotationX := plotLeft + barW + offset/xMax*plotW + labelPad/2
			dc.DrawStringAnchored(fmt.Sprintf("%.0f ms", avgs[i]), annotationX, yCenter, 0, 0.35)
		}
	}

	dc.SetHexColor(textColor)
	face.set(dc, titleFontSize)
	dc.DrawStringAnchored(title, float64(width)/2, marginTop/2, 0.5, 0.5)

	face.set(dc, axisFontSize)
	dc.DrawStringAnchored(xLabel, plotLeft+plotW/2, float64(height)-marginBottom/4, 0.5, 0.5)

	return dc, nil
}

func measureWidth(dc *gg.Context, s string) float64 {
	w, _ := dc.MeasureString(s)
	return w
}
