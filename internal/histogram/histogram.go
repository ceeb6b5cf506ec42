// Package histogram renders measurement frequency tables for human
// inspection, either as a PNG bar chart or as a plain-text chart for
// terminals.
package histogram

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNoCounts is returned when asked to render an empty frequency table.
var ErrNoCounts = fmt.Errorf("frequency table is empty")

// sortedOutcomes returns the table's outcomes in lexicographic order so
// charts are stable across runs.
func sortedOutcomes(counts map[string]int) []string {
	outcomes := make([]string, 0, len(counts))
	for o := range counts {
		outcomes = append(outcomes, o)
	}
	sort.Strings(outcomes)
	return outcomes
}

// WritePNG writes a bar chart of the frequency table to path.
func WritePNG(counts map[string]int, title, path string) error {
	if len(counts) == 0 {
		return ErrNoCounts
	}
	outcomes := sortedOutcomes(counts)

	values := make(plotter.Values, len(outcomes))
	for i, o := range outcomes {
		values[i] = float64(counts[o])
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "counts"

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return fmt.Errorf("building bar chart: %w", err)
	}
	bars.LineStyle.Width = 0
	bars.Color = plotutil.Color(2)

	p.Add(bars)
	p.NominalX(outcomes...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving chart to %s: %w", path, err)
	}
	return nil
}

// Sprint renders the frequency table as text bars, one outcome per line.
func Sprint(counts map[string]int) string {
	outcomes := sortedOutcomes(counts)
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	const width = 40
	var b strings.Builder
	for _, o := range outcomes {
		c := counts[o]
		bar := 0
		if max > 0 {
			bar = c * width / max
		}
		fmt.Fprintf(&b, "%s %5d %s\n", o, c, strings.Repeat("#", bar))
	}
	return b.String()
}
