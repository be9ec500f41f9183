// Package viz renders simulation results as standalone SVG documents.
package viz

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/ruinlab/ruin/core"
)

// PlotConfig holds styling and dimension configuration for the histogram
// chart.
type PlotConfig struct {
	Width        int
	Height       int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int
	BarColor     string
	MarkerColor  string
	GridColor    string
	TextColor    string
}

// DefaultPlotConfig returns sensible defaults.
func DefaultPlotConfig() PlotConfig {
	return PlotConfig{
		Width: 800, Height: 420, MarginTop: 40, MarginRight: 30,
		MarginBottom: 70, MarginLeft: 60,
		BarColor: "#3b82f6", MarkerColor: "#ef4444",
		GridColor: "#e5e7eb", TextColor: "#000000",
	}
}

type barRect struct{ X, Y, W, H int }

type xTick struct {
	X     int
	Label string
}

type yTick struct {
	Y     int
	Label string
}

type gridLine struct{ X1, Y1, X2, Y2 int }

type markerLine struct {
	X     int
	Label string
}

type histogramTemplateData struct {
	Config      PlotConfig
	Title       string
	InnerWidth  int
	InnerHeight int
	Bars        []barRect
	XTicks      []xTick
	YTicks      []yTick
	GridLines   []gridLine
	Marker      *markerLine
}

const histogramSVGTemplate = `<svg width="{{.Config.Width}}" height="{{.Config.Height}}" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <style>
      .axis { font: 11px sans-serif; fill: {{.Config.TextColor}}; }
      .axis path, .axis line { fill: none; stroke: {{.Config.TextColor}}; shape-rendering: crispEdges; }
      .grid-line { stroke: {{.Config.GridColor}}; stroke-width: 0.5px; }
      .title { font: bold 16px sans-serif; text-anchor: middle; fill: {{.Config.TextColor}}; }
      .marker-label { font: 11px sans-serif; fill: {{.Config.MarkerColor}}; }
    </style>
  </defs>

  {{if .Title}}
  <text class="title" x="{{div .Config.Width 2}}" y="20">{{.Title}}</text>
  {{end}}

  <g transform="translate({{.Config.MarginLeft}},{{.Config.MarginTop}})">
    <!-- Grid Lines -->
    {{range .GridLines}}<line class="grid-line" x1="{{.X1}}" x2="{{.X2}}" y1="{{.Y1}}" y2="{{.Y2}}"></line>{{end}}

    <!-- Bars -->
    {{range .Bars}}<rect x="{{.X}}" y="{{.Y}}" width="{{.W}}" height="{{.H}}" fill="{{$.Config.BarColor}}"></rect>
    {{end}}

    <!-- X Axis -->
    <g class="axis" transform="translate(0,{{.InnerHeight}})">
      {{range .XTicks}}<line x1="{{.X}}" x2="{{.X}}" y1="0" y2="6"></line><text x="{{.X}}" y="10" text-anchor="end" transform="rotate(-40 {{.X}} 10)">{{.Label}}</text>{{end}}
      <path d="M0,0H{{$.InnerWidth}}"></path>
    </g>

    <!-- Y Axis -->
    <g class="axis">
      {{range .YTicks}}<line x1="0" x2="-6" y1="{{.Y}}" y2="{{.Y}}"></line><text x="-10" y="{{add .Y 4}}" text-anchor="end">{{.Label}}</text>{{end}}
      <path d="M0,0V{{$.InnerHeight}}"></path>
    </g>

    {{with .Marker}}
    <!-- Analytic expected cost marker -->
    <line x1="{{.X}}" x2="{{.X}}" y1="0" y2="{{$.InnerHeight}}" stroke="{{$.Config.MarkerColor}}" stroke-width="2px" stroke-dasharray="6,3"></line>
    <text class="marker-label" x="{{add .X 6}}" y="14">{{.Label}}</text>
    {{end}}
  </g>
</svg>`

// HistogramPlotter renders a core.Histogram as an SVG bar chart with a
// vertical marker at the analytic expected cost.
type HistogramPlotter struct {
	config   PlotConfig
	template *template.Template
}

func NewHistogramPlotter(config PlotConfig) *HistogramPlotter {
	tmpl := template.Must(template.New("histogram").Funcs(template.FuncMap{
		"div": func(a, b int) int { return a / b },
		"add": func(a, b int) int { return a + b },
	}).Parse(histogramSVGTemplate))
	return &HistogramPlotter{config: config, template: tmpl}
}

// Render draws one bar per histogram bucket, left to right in increasing
// cost order. stats supplies the cost extent used to place the analytic
// marker on the same axis as the buckets.
func (p *HistogramPlotter) Render(hist core.Histogram, stats core.Stats, analyticCost float64, title string) (string, error) {
	innerWidth := p.config.Width - p.config.MarginLeft - p.config.MarginRight
	innerHeight := p.config.Height - p.config.MarginTop - p.config.MarginBottom

	data := histogramTemplateData{
		Config: p.config, Title: title,
		InnerWidth: innerWidth, InnerHeight: innerHeight,
	}

	if len(hist.Counts) > 0 {
		maxCount := 0
		for _, c := range hist.Counts {
			if c > maxCount {
				maxCount = c
			}
		}
		ticks := niceTicks(0, float64(maxCount), 6)
		top := ticks[len(ticks)-1]
		if top <= 0 {
			top = 1
		}

		scaleY := func(v float64) int {
			return innerHeight - int(v/top*float64(innerHeight))
		}

		for _, tick := range ticks {
			y := scaleY(tick)
			data.YTicks = append(data.YTicks, yTick{Y: y, Label: formatTick(tick)})
			data.GridLines = append(data.GridLines, gridLine{0, y, innerWidth, y})
		}

		binWidth := float64(innerWidth) / float64(len(hist.Counts))
		gap := int(binWidth * 0.1)
		for i, count := range hist.Counts {
			x := int(float64(i) * binWidth)
			y := scaleY(float64(count))
			data.Bars = append(data.Bars, barRect{
				X: x + gap/2,
				Y: y,
				W: int(binWidth) - gap,
				H: innerHeight - y,
			})
		}

		// Label roughly every k-th bucket so the axis stays readable.
		step := (len(hist.Labels) + 11) / 12
		for i := 0; i < len(hist.Labels); i += step {
			x := int((float64(i) + 0.5) * binWidth)
			data.XTicks = append(data.XTicks, xTick{X: x, Label: hist.Labels[i]})
		}

		// The buckets span [stats.Min, stats.Max]; project the analytic
		// cost onto that range, clamped to the chart edges.
		span := stats.Max - stats.Min
		ratio := 0.5
		if span > 0 {
			ratio = (analyticCost - stats.Min) / span
		}
		ratio = math.Max(0, math.Min(1, ratio))
		data.Marker = &markerLine{
			X:     int(ratio * float64(innerWidth)),
			Label: fmt.Sprintf("expected $%.2f", analyticCost),
		}
	}

	var result strings.Builder
	if err := p.template.Execute(&result, data); err != nil {
		return "", err
	}
	return "<?xml version=\"1.0\" encoding=\"UTF-8\"?>" + result.String(), nil
}

// niceTicks picks round-numbered tick values covering [min, max], in the
// 1/2/5 progression.
func niceTicks(min, max float64, maxTicks int) []float64 {
	if max <= min {
		return []float64{min, min + 1}
	}
	rawStep := (max - min) / float64(maxTicks-1)
	magnitude := math.Pow(10, math.Floor(math.Log10(rawStep)))
	var step float64
	switch normalized := rawStep / magnitude; {
	case normalized <= 1:
		step = magnitude
	case normalized <= 2:
		step = 2 * magnitude
	case normalized <= 5:
		step = 5 * magnitude
	default:
		step = 10 * magnitude
	}
	var ticks []float64
	for tick := math.Floor(min/step) * step; ; tick += step {
		ticks = append(ticks, tick)
		if tick >= max {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	formatted := fmt.Sprintf("%.1f", v)
	formatted = strings.TrimRight(strings.TrimRight(formatted, "0"), ".")
	if formatted == "" || formatted == "-" {
		return "0"
	}
	return formatted
}
