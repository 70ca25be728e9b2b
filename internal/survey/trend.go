package survey

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/natlarsen/arab-spring-analysis/internal/model"
)

// Point is one aligned (x, y) pair of group shares.
type Point struct {
	Group string
	X     float64
	Y     float64
}

// AlignedPoints extracts the (x, y) pairs for groups that have a cell
// in both columns of the table. Groups missing either cell are skipped,
// not zero-filled. Points come back sorted by group key so the fit is
// deterministic for the same table.
func AlignedPoints(table *model.SummaryTable, xCol, yCol string) []Point {
	var points []Point
	for _, key := range table.SortedKeys() {
		x, okX := table.Value(key, xCol)
		y, okY := table.Value(key, yCol)
		if !okX || !okY {
			continue
		}
		points = append(points, Point{Group: key, X: x, Y: y})
	}
	return points
}

// FitTrend fits an ordinary least-squares line through the points.
// It is a stateless pure computation; nothing in the aggregation core
// depends on its result.
func FitTrend(points []Point) (model.TrendLine, error) {
	if len(points) < 2 {
		return model.TrendLine{}, fmt.Errorf("trend fit needs at least 2 aligned points, got %d", len(points))
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	if stat.Variance(xs, nil) == 0 {
		return model.TrendLine{}, fmt.Errorf("trend fit undefined: all x values equal %v", xs[0])
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return model.TrendLine{Intercept: intercept, Slope: slope, N: len(points)}, nil
}
