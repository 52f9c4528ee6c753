// Package chart renders chart specifications as SVG bar charts and owns the
// single current chart through Controller.
package chart

import (
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/dustin/go-humanize"

	"github.com/terrascope/worldview/internal/models"
)

type Options struct {
	Width  int
	Height int
}

func DefaultOptions() Options {
	return Options{Width: 960, Height: 520}
}

const (
	marginTop    = 70
	marginRight  = 90
	marginBottom = 130
	marginLeft   = 90

	colorBackdrop = "#ffffff"
	colorGrid     = "#e8e8e8"
	colorAxis     = "#555555"
	colorText     = "#333333"
	fontFamily    = "font-family:Segoe UI,Helvetica,Arial,sans-serif"
)

// axis maps values of one dataset onto the plot height.
type axis struct {
	log bool
	max float64 // linear max, or log10 of the top tick
}

func newAxis(ds models.Dataset) axis {
	var hi float64
	for _, v := range ds.Data {
		if v > hi {
			hi = v
		}
	}

	if ds.Logarithmic {
		top := 1.0
		if hi > 1 {
			top = math.Ceil(math.Log10(hi))
		}
		return axis{log: true, max: top}
	}

	if hi <= 0 {
		hi = 1
	}
	return axis{max: niceCeil(hi)}
}

// fraction returns v's position on the axis in [0, 1]. Non-positive values
// have no extent on a log axis.
func (a axis) fraction(v float64) float64 {
	if a.log {
		if v <= 1 {
			return 0
		}
		return math.Min(math.Log10(v)/a.max, 1)
	}
	if v <= 0 {
		return 0
	}
	return math.Min(v/a.max, 1)
}

func (a axis) ticks() []float64 {
	var ticks []float64
	if a.log {
		for p := 0.0; p <= a.max; p++ {
			ticks = append(ticks, math.Pow(10, p))
		}
		return ticks
	}
	for i := 0; i <= 5; i++ {
		ticks = append(ticks, a.max*float64(i)/5)
	}
	return ticks
}

func niceCeil(v float64) float64 {
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 5, 10} {
		if v <= m*exp {
			return m * exp
		}
	}
	return 10 * exp
}

// Render writes spec as a grouped bar chart. The first dataset is scaled on
// the left axis, the second on the right.
func Render(w io.Writer, spec models.ChartSpec, opts Options) error {
	if opts.Width <= marginLeft+marginRight || opts.Height <= marginTop+marginBottom {
		return fmt.Errorf("chart too small: %dx%d", opts.Width, opts.Height)
	}

	cw := &errWriter{w: w}
	canvas := svg.New(cw)
	canvas.Start(opts.Width, opts.Height)
	canvas.Title(spec.Title)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:"+colorBackdrop)

	plotX, plotY := marginLeft, marginTop
	plotW := opts.Width - marginLeft - marginRight
	plotH := opts.Height - marginTop - marginBottom

	canvas.Text(opts.Width/2, 30, spec.Title,
		"text-anchor:middle;font-size:18px;font-weight:bold;fill:"+colorText+";"+fontFamily)

	axes := make([]axis, len(spec.Datasets))
	for i, ds := range spec.Datasets {
		axes[i] = newAxis(ds)
	}

	drawLegend(canvas, spec, opts.Width)
	if len(axes) > 0 {
		drawAxis(canvas, axes[0], spec.Datasets[0], plotX, plotY, plotH, false)
	}
	if len(axes) > 1 {
		drawAxis(canvas, axes[1], spec.Datasets[1], plotX+plotW, plotY, plotH, true)
	}

	canvas.Line(plotX, plotY+plotH, plotX+plotW, plotY+plotH, "stroke:"+colorAxis+";stroke-width:1")
	canvas.Text(plotX+plotW/2, opts.Height-12, spec.XAxisTitle,
		"text-anchor:middle;font-size:13px;fill:"+colorText+";"+fontFamily)

	if spec.Empty() {
		canvas.Text(plotX+plotW/2, plotY+plotH/2, "No data",
			"text-anchor:middle;font-size:16px;fill:"+colorAxis+";"+fontFamily)
		canvas.End()
		return cw.err
	}

	drawBars(canvas, spec, axes, plotX, plotY, plotW, plotH)

	canvas.End()
	return cw.err
}

func drawBars(canvas *svg.SVG, spec models.ChartSpec, axes []axis, plotX, plotY, plotW, plotH int) {
	n := len(spec.Labels)
	slot := float64(plotW) / float64(n)
	barW := slot * 0.8 / float64(max(len(spec.Datasets), 1))

	for i, label := range spec.Labels {
		x0 := float64(plotX) + slot*float64(i) + slot*0.1

		for d, ds := range spec.Datasets {
			if i >= len(ds.Data) {
				continue
			}
			h := axes[d].fraction(ds.Data[i]) * float64(plotH)
			if h <= 0 {
				continue
			}
			x := int(math.Round(x0 + barW*float64(d)))
			canvas.Rect(x, plotY+plotH-int(math.Round(h)), max(int(barW), 1), int(math.Round(h)),
				fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", ds.BackgroundColor, ds.BorderColor))
		}

		if label == "" {
			continue
		}
		cx := int(math.Round(x0 + slot*0.4))
		canvas.TranslateRotate(cx, plotY+plotH+12, -45)
		canvas.Text(0, 0, label, "text-anchor:end;font-size:11px;fill:"+colorText+";"+fontFamily)
		canvas.Gend()
	}
}

func drawAxis(canvas *svg.SVG, a axis, ds models.Dataset, x, plotY, plotH int, right bool) {
	canvas.Line(x, plotY, x, plotY+plotH, "stroke:"+colorAxis+";stroke-width:1")

	anchor, dx := "end", -6
	if right {
		anchor, dx = "start", 6
	}

	for _, tick := range a.ticks() {
		y := plotY + plotH - int(math.Round(a.fraction(tick)*float64(plotH)))
		if !right {
			canvas.Line(x, y, x+4, y, "stroke:"+colorGrid)
		}
		canvas.Text(x+dx, y+4, tickLabel(tick),
			"text-anchor:"+anchor+";font-size:10px;fill:"+colorAxis+";"+fontFamily)
	}

	titleX := x - 70
	if right {
		titleX = x + 75
	}
	canvas.TranslateRotate(titleX, plotY+plotH/2, -90)
	canvas.Text(0, 0, ds.AxisTitle, "text-anchor:middle;font-size:12px;fill:"+ds.BorderColor+";"+fontFamily)
	canvas.Gend()
}

func drawLegend(canvas *svg.SVG, spec models.ChartSpec, width int) {
	x := width - marginRight - 160
	for i, ds := range spec.Datasets {
		y := 44 + i*18
		canvas.Rect(x, y-10, 12, 12, fmt.Sprintf("fill:%s;stroke:%s", ds.BackgroundColor, ds.BorderColor))
		canvas.Text(x+18, y, ds.Label, "font-size:12px;fill:"+colorText+";"+fontFamily)
	}
}

func tickLabel(v float64) string {
	switch {
	case v >= 1e9:
		return strconv.FormatFloat(v/1e9, 'f', -1, 64) + "B"
	case v >= 1e6:
		return strconv.FormatFloat(v/1e6, 'f', -1, 64) + "M"
	}
	return humanize.Comma(int64(math.Round(v)))
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
