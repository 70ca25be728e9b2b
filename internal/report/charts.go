package report

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/natlarsen/arab-spring-analysis/internal/model"
	"github.com/natlarsen/arab-spring-analysis/internal/survey"
)

var (
	barColor     = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	scatterColor = color.RGBA{R: 139, G: 0, B: 0, A: 255}
	lineColor    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// saveBarChart renders one favorable-percentage bar per group,
// alphabetical on the x axis.
func saveBarChart(summary model.GroupSummary, title, yLabel, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = yLabel

	keys := summary.SortedKeys()
	values := make(plotter.Values, len(keys))
	for i, key := range keys {
		values[i] = summary[key] * 100
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	p.NominalX(keys...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XCenter
	p.Y.Min = 0
	p.Y.Max = 100

	for i, val := range values {
		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: float64(i), Y: val + 2}},
			Labels: []string{fmt.Sprintf("%.0f%%", val)},
		})
		if err != nil {
			return fmt.Errorf("failed to build bar labels: %w", err)
		}
		p.Add(label)
	}

	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	return nil
}

// saveScatterChart renders the aligned group shares with the fitted
// least-squares line overlaid.
func saveScatterChart(points []survey.Point, line model.TrendLine, title, xLabel, yLabel, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	xys := make(plotter.XYs, len(points))
	labels := make([]string, len(points))
	for i, pt := range points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
		labels[i] = pt.Group
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("failed to build scatter: %w", err)
	}
	scatter.GlyphStyle.Color = scatterColor
	scatter.GlyphStyle.Radius = vg.Points(4)
	p.Add(scatter)
	p.Add(plotter.NewGrid())

	fit := plotter.NewFunction(func(x float64) float64 { return line.Intercept + line.Slope*x })
	fit.Color = lineColor
	fit.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	p.Add(fit)

	labelPoints, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    xys,
		Labels: labels,
	})
	if err != nil {
		return fmt.Errorf("failed to build point labels: %w", err)
	}
	p.Add(labelPoints)

	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	if err := p.Save(10*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	return nil
}
