package export

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteHTMLReport renders an HTML routing report: a bar chart of per-wire
// quality, a bar chart of length and bend counts, and the routed polylines on
// an XY plane.
func WriteHTMLReport(path string, wires []WireReport) error {
	page := components.NewPage()
	page.AddCharts(qualityChart(wires), metricsChart(wires), polylineChart(wires))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func wireNames(wires []WireReport) []string {
	names := make([]string, len(wires))
	for i, w := range wires {
		names[i] = w.Name
	}
	return names
}

func qualityChart(wires []WireReport) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Route quality"}))

	data := make([]opts.BarData, len(wires))
	for i, w := range wires {
		data[i] = opts.BarData{Value: w.Result.Quality}
	}
	bar.SetXAxis(wireNames(wires)).AddSeries("quality", data)
	return bar
}

func metricsChart(wires []WireReport) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Length and bends"}))

	lengths := make([]opts.BarData, len(wires))
	bends := make([]opts.BarData, len(wires))
	for i, w := range wires {
		lengths[i] = opts.BarData{Value: w.Result.TotalLength}
		bends[i] = opts.BarData{Value: w.Result.BendCount}
	}
	bar.SetXAxis(wireNames(wires)).
		AddSeries("total length", lengths).
		AddSeries("bends", bends)
	return bar
}

func polylineChart(wires []WireReport) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Routed wires"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
	)

	for _, w := range wires {
		if len(w.Result.Segments) == 0 {
			continue
		}
		points := make([]opts.LineData, 0, len(w.Result.Segments)+1)
		first := w.Result.Segments[0].Start
		points = append(points, opts.LineData{Value: []float64{first.X, first.Y}})
		for _, s := range w.Result.Segments {
			points = append(points, opts.LineData{Value: []float64{s.End.X, s.End.Y}})
		}
		line.AddSeries(w.Name, points)
	}
	return line
}
