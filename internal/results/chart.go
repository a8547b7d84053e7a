package results

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/lox/blackjackrl/internal/fileutil"
)

// RenderChart writes an HTML page plotting the interval win-rate history.
func (r *Result) RenderChart(w io.Writer) error {
	return RenderWinRateChart(w, r.WinRateHistory, r.Hyperparameters.IntervalSize)
}

// RenderWinRateChart plots history samples taken every interval episodes.
func RenderWinRateChart(w io.Writer, history []float64, interval int) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Win rate per interval",
			Subtitle: fmt.Sprintf("%d samples, %d episodes each", len(history), interval),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "blackjackrl",
			Theme:     "shine",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "episode"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "win %"}),
	)

	xs := make([]string, 0, len(history))
	items := make([]opts.LineData, 0, len(history))
	for i, v := range history {
		xs = append(xs, fmt.Sprintf("%d", (i+1)*interval))
		items = append(items, opts.LineData{Value: v})
	}
	line.SetXAxis(xs).AddSeries("win rate", items)

	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}

// SaveChart atomically writes the win-rate chart to path.
func (r *Result) SaveChart(path string) error {
	var buf bytes.Buffer
	if err := r.RenderChart(&buf); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
