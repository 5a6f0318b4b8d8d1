// Package chart adapts resolved report data onto gonum/plot. It owns the
// layout conventions shared by every chart: grouped-bar offsets, verdict
// coloring, the parity reference line, and value-label placement.
package chart

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/gx14ac/zart/internal/compare"
	"github.com/gx14ac/zart/internal/report"
)

var barWidth = vg.Points(20)

// Renderer draws report targets to image and Markdown files.
type Renderer struct {
	Width       vg.Length
	PanelHeight vg.Length
}

// New returns a renderer with the shared figure dimensions.
func New() *Renderer {
	return &Renderer{
		Width:       9 * vg.Inch,
		PanelHeight: 4 * vg.Inch,
	}
}

// Render produces the artifact for one resolved target.
func (r *Renderer) Render(t report.Target, d *report.Data) error {
	switch t.Kind {
	case report.GroupedBar:
		return r.groupedBar(t, d)
	case report.RatioBar:
		return r.ratioBar(t, d)
	case report.Line, report.TwinAxisLine:
		return r.linePanels(t, d)
	case report.Table:
		return r.table(t, d)
	default:
		return fmt.Errorf("no renderer for kind %s", t.Kind)
	}
}

// pair is one operation with both sides measured, after the transform.
type pair struct {
	label     string
	baseline  float64
	candidate float64
}

// pairedValues keeps the entries plot-worthy for a grouped chart: both
// measurements available, and a positive latency when deriving throughput.
func pairedValues(entries []compare.Entry, tr report.Transform) []pair {
	var pairs []pair
	for _, e := range entries {
		b, bOK := e.Baseline.Float()
		c, cOK := e.Candidate.Float()
		if !bOK || !cOK {
			continue
		}
		if tr == report.Throughput && (b == 0 || c == 0) {
			continue
		}
		pairs = append(pairs, pair{
			label:     e.Op.Label(),
			baseline:  tr.Apply(b),
			candidate: tr.Apply(c),
		})
	}
	return pairs
}

func (r *Renderer) groupedBar(t report.Target, d *report.Data) error {
	pairs := pairedValues(d.Entries, t.Transform)
	if len(pairs) == 0 {
		return &report.SkipError{Reason: "no paired measurements"}
	}

	p := plot.New()
	p.Title.Text = t.Title
	p.Y.Label.Text = yAxisLabel(t.Transform)

	base := make(plotter.Values, len(pairs))
	cand := make(plotter.Values, len(pairs))
	labels := make([]string, len(pairs))
	for i, pr := range pairs {
		base[i] = pr.baseline
		cand[i] = pr.candidate
		labels[i] = pr.label
	}

	baseBars, err := plotter.NewBarChart(base, barWidth)
	if err != nil {
		return err
	}
	baseBars.LineStyle.Width = 0
	baseBars.Color = baselineColor
	baseBars.Offset = -barWidth / 2

	candBars, err := plotter.NewBarChart(cand, barWidth)
	if err != nil {
		return err
	}
	candBars.LineStyle.Width = 0
	candBars.Color = candidateColor
	candBars.Offset = barWidth / 2

	p.Add(baseBars, candBars)
	p.Legend.Add(d.Baseline, baseBars)
	p.Legend.Add(d.Candidate, candBars)
	p.Legend.Top = true
	p.NominalX(labels...)

	if err := addValueLabels(p, base, -barWidth/2, report.FormatValue); err != nil {
		return err
	}
	if err := addValueLabels(p, cand, barWidth/2, report.FormatValue); err != nil {
		return err
	}

	growYForLabels(p, maxValue(base, cand))
	return p.Save(r.Width, r.PanelHeight, t.Path)
}

func (r *Renderer) ratioBar(t report.Target, d *report.Data) error {
	defined := compare.Defined(d.Entries)
	if len(defined) == 0 {
		return &report.SkipError{Reason: "no defined ratios"}
	}

	p := plot.New()
	p.Title.Text = t.Title
	p.Y.Label.Text = fmt.Sprintf("Ratio (%s / %s)", d.Candidate, d.Baseline)

	// One bar series per verdict so each bar picks up its tier's hue.
	// Off-tier slots hold zero and draw nothing.
	labels := make([]string, len(defined))
	ratios := make(plotter.Values, len(defined))
	byVerdict := map[compare.Verdict]plotter.Values{}
	for _, v := range []compare.Verdict{compare.Faster, compare.Good, compare.NeedsImprovement} {
		byVerdict[v] = make(plotter.Values, len(defined))
	}
	present := map[compare.Verdict]bool{}
	for i, e := range defined {
		labels[i] = e.Op.Label()
		ratios[i] = e.Ratio
		byVerdict[e.Verdict][i] = e.Ratio
		present[e.Verdict] = true
	}

	for _, v := range []compare.Verdict{compare.Faster, compare.Good, compare.NeedsImprovement} {
		if !present[v] {
			continue
		}
		bars, err := plotter.NewBarChart(byVerdict[v], barWidth)
		if err != nil {
			return err
		}
		bars.LineStyle.Width = 0
		bars.Color = verdictColor(v)
		p.Add(bars)
		p.Legend.Add(v.String(), bars)
	}
	p.Legend.Top = true
	p.NominalX(labels...)

	// Parity line: candidate == baseline at ratio 1.0.
	parity, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: 1.0},
		{X: float64(len(defined)) - 0.5, Y: 1.0},
	})
	if err != nil {
		return err
	}
	parity.Color = parityColor
	parity.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(parity)

	if err := addValueLabels(p, ratios, 0, ratioLabel); err != nil {
		return err
	}

	growYForLabels(p, maxValue(ratios))
	return p.Save(r.Width, r.PanelHeight, t.Path)
}

func ratioLabel(r float64) string {
	return report.FormatValue(r) + "x"
}

func (r *Renderer) linePanels(t report.Target, d *report.Data) error {
	table := d.Scaling
	plots := make([][]*plot.Plot, 0, len(t.Panels))

	for _, panel := range t.Panels {
		p := plot.New()
		p.Title.Text = panel.Title
		p.X.Label.Text = t.XLabel
		p.Y.Label.Text = panel.YLabel
		if panel.LogX {
			p.X.Scale = plot.LogScale{}
			p.X.Tick.Marker = plot.LogTicks{Prec: -1}
		}
		if panel.LogY {
			p.Y.Scale = plot.LogScale{}
			p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
		}

		drew := false
		for si, s := range panel.Series {
			col, ok := table.Column(s.Column)
			if !ok {
				return &report.SkipError{
					Reason: fmt.Sprintf("source %s has no column %s", table.Source, s.Column),
				}
			}
			pts := lineXYs(table.X, col.Values, panel.LogX, panel.LogY)
			if len(pts) == 0 {
				continue
			}
			line, points, err := plotter.NewLinePoints(pts)
			if err != nil {
				return err
			}
			c := seriesPalette[si%len(seriesPalette)]
			line.Color = c
			line.Width = vg.Points(2)
			points.Color = c
			p.Add(line, points)
			p.Legend.Add(s.Label, line)
			drew = true
		}
		if !drew {
			return &report.SkipError{Reason: "no plottable points"}
		}
		p.Legend.Top = true
		plots = append(plots, []*plot.Plot{p})
	}

	if len(plots) == 1 {
		return plots[0][0].Save(r.Width, r.PanelHeight, t.Path)
	}
	return r.saveAligned(plots, t.Path)
}

// saveAligned stacks panels vertically in one PNG, sharing the X extent.
func (r *Renderer) saveAligned(plots [][]*plot.Plot, path string) error {
	img := vgimg.New(r.Width, r.PanelHeight*vg.Length(len(plots)))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: len(plots),
		Cols: 1,
		PadY: vg.Points(8),
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}

func (r *Renderer) table(t report.Target, d *report.Data) error {
	if len(d.Rows) == 0 {
		return &report.SkipError{Reason: "no table rows"}
	}
	f, err := os.Create(t.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := report.WriteMarkdown(f, t.Title, d.Baseline, d.Candidate, d.Rows); err != nil {
		return err
	}
	return f.Close()
}

// lineXYs pairs the independent and dependent series, dropping points a log
// scale cannot place.
func lineXYs(xs, ys []float64, logX, logY bool) plotter.XYs {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	pts := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		if logX && xs[i] <= 0 {
			continue
		}
		if logY && ys[i] <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return pts
}

// addValueLabels annotates each bar's value above it. The horizontal offset
// matches the bar series' own offset so labels track their bars.
func addValueLabels(p *plot.Plot, values plotter.Values, offset vg.Length, format func(float64) string) error {
	xys := make(plotter.XYs, len(values))
	strs := make([]string, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
		strs[i] = format(v)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: strs})
	if err != nil {
		return err
	}
	labels.Offset = vg.Point{X: offset, Y: vg.Points(2)}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YBottom
		labels.TextStyle[i].Font.Size = vg.Points(8)
	}
	p.Add(labels)
	return nil
}

// growYForLabels leaves headroom above the tallest bar so its label is not
// clipped by the plot frame.
func growYForLabels(p *plot.Plot, maxVal float64) {
	if maxVal > p.Y.Max {
		p.Y.Max = maxVal
	}
	p.Y.Max *= 1.12
}

func maxValue(series ...plotter.Values) float64 {
	m := 0.0
	for _, vs := range series {
		for _, v := range vs {
			if v > m {
				m = v
			}
		}
	}
	return m
}

func yAxisLabel(tr report.Transform) string {
	if tr == report.Throughput {
		return "Throughput (ops/sec)"
	}
	return "Latency (ns/op)"
}
