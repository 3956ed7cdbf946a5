package chart

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/bizsim/internal/metrics"
	"github.com/san-kum/bizsim/internal/scenario"
)

// Series is one line of an SVG chart. X values start at Start and step by 1.
type Series struct {
	Name    string
	Color   string
	Dash    string
	Start   int
	Values  []float64
	Markers bool
}

const (
	svgWidth  = 960
	svgHeight = 480
	svgPad    = 60
)

var strokes = map[scenario.Kind]struct{ color, dash string }{
	scenario.Base:        {"#1f77b4", ""},
	scenario.Optimistic:  {"#2ca02c", "8,4"},
	scenario.Pessimistic: {"#d62728", "2,4"},
}

type bounds struct {
	minX, maxX, minY, maxY float64
}

func seriesBounds(series []Series) (bounds, bool) {
	b := bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	found := false
	for _, s := range series {
		for i, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			x := float64(s.Start + i)
			b.minX = math.Min(b.minX, x)
			b.maxX = math.Max(b.maxX, x)
			b.minY = math.Min(b.minY, v)
			b.maxY = math.Max(b.maxY, v)
			found = true
		}
	}
	if !found {
		return b, false
	}
	if b.maxX == b.minX {
		b.maxX = b.minX + 1
	}
	rangeY := b.maxY - b.minY
	if rangeY == 0 {
		rangeY = math.Max(math.Abs(b.maxY), 1)
	}
	b.minY -= rangeY * 0.1
	b.maxY += rangeY * 0.1
	return b, true
}

func (b bounds) point(x, y float64) (float64, float64) {
	plotW := float64(svgWidth - 2*svgPad)
	plotH := float64(svgHeight - 2*svgPad)
	px := svgPad + (x-b.minX)/(b.maxX-b.minX)*plotW
	py := svgHeight - svgPad - (y-b.minY)/(b.maxY-b.minY)*plotH
	return px, py
}

func svgHeader(sb *strings.Builder, title, xLabel, yLabel string) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<text x="%d" y="30" text-anchor="middle" font-size="18">%s</text>
<text x="%d" y="%d" text-anchor="middle" font-size="13">%s</text>
<text x="18" y="%d" text-anchor="middle" font-size="13" transform="rotate(-90 18 %d)">%s</text>
`, svgWidth, svgHeight, svgWidth, svgHeight,
		svgWidth/2, escape(title),
		svgWidth/2, svgHeight-15, escape(xLabel),
		svgHeight/2, svgHeight/2, escape(yLabel)))
}

func svgAxes(sb *strings.Builder, b bounds) {
	x0, y0 := float64(svgPad), float64(svgHeight-svgPad)
	sb.WriteString(fmt.Sprintf(`<g stroke="#999999" stroke-width="1">
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
</g>
`, x0, y0, float64(svgWidth-svgPad), y0, x0, y0, x0, float64(svgPad)))

	if b.minY < 0 && b.maxY > 0 {
		_, zy := b.point(b.minX, 0)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#cccccc" stroke-dasharray="4,4"/>
`, x0, zy, float64(svgWidth-svgPad), zy))
	}

	sb.WriteString(fmt.Sprintf(`<g font-size="11" fill="#555555">
<text x="%d" y="%d" text-anchor="end">%.2f</text>
<text x="%d" y="%d" text-anchor="end">%.2f</text>
<text x="%d" y="%d" text-anchor="middle">%.0f</text>
<text x="%d" y="%d" text-anchor="middle">%.0f</text>
</g>
`, svgPad-5, svgPad+4, b.maxY, svgPad-5, svgHeight-svgPad, b.minY,
		svgPad, svgHeight-svgPad+16, b.minX, svgWidth-svgPad, svgHeight-svgPad+16, b.maxX))
}

// LineSVG draws the series on shared axes with a legend.
func LineSVG(title, xLabel, yLabel string, series []Series) string {
	var sb strings.Builder
	svgHeader(&sb, title, xLabel, yLabel)

	b, ok := seriesBounds(series)
	if !ok {
		sb.WriteString(`<text x="50%" y="50%" text-anchor="middle">no data</text>
</svg>`)
		return sb.String()
	}
	svgAxes(&sb, b)

	for _, s := range series {
		var path strings.Builder
		started := false
		for i, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				started = false
				continue
			}
			x, y := b.point(float64(s.Start+i), v)
			if !started {
				path.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
				started = true
			} else {
				path.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}

		dash := ""
		if s.Dash != "" {
			dash = fmt.Sprintf(` stroke-dasharray="%s"`, s.Dash)
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="2"%s d="%s"/>
`, s.Color, dash, path.String()))

		if s.Markers {
			sb.WriteString(fmt.Sprintf(`<g fill="%s">
`, s.Color))
			for i, v := range s.Values {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					continue
				}
				x, y := b.point(float64(s.Start+i), v)
				sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3"/>
`, x, y))
			}
			sb.WriteString("</g>\n")
		}
	}

	for i, s := range series {
		y := svgPad + 10 + i*18
		sb.WriteString(fmt.Sprintf(`<g font-size="12"><line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2"/><text x="%d" y="%d">%s</text></g>
`, svgWidth-svgPad-120, y, svgWidth-svgPad-95, y, s.Color, svgWidth-svgPad-90, y+4, escape(s.Name)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// BarSVG draws one bar per value, months numbered from 1.
func BarSVG(title, xLabel, yLabel string, values []float64, color string) string {
	var sb strings.Builder
	svgHeader(&sb, title, xLabel, yLabel)

	b, ok := seriesBounds([]Series{{Start: 1, Values: values}})
	if !ok {
		sb.WriteString(`<text x="50%" y="50%" text-anchor="middle">no data</text>
</svg>`)
		return sb.String()
	}
	b.minY = math.Min(b.minY, 0)
	b.maxY = math.Max(b.maxY, 0)
	b.minX -= 0.5
	b.maxX += 0.5
	svgAxes(&sb, b)

	plotW := float64(svgWidth - 2*svgPad)
	barW := plotW / (b.maxX - b.minX) * 0.8

	_, zy := b.point(b.minX, 0)

	sb.WriteString(fmt.Sprintf(`<g fill="%s">
`, color))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		x, y := b.point(float64(i+1), v)
		top, h := y, zy-y
		if v < 0 {
			top, h = zy, y-zy
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, x-barW/2, top, barW, h))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func scenarioSeries(ps []scenario.Projection, pick func(scenario.Projection) []float64) []Series {
	out := make([]Series, len(ps))
	for i, p := range ps {
		st := strokes[p.Kind]
		out[i] = Series{
			Name:   p.Kind.Title(),
			Color:  st.color,
			Dash:   st.dash,
			Start:  1,
			Values: pick(p),
		}
	}
	return out
}

// SVGFiles renders the five charts keyed by file name.
func SVGFiles(ps []scenario.Projection) map[string]string {
	files := map[string]string{
		"monthly_profit.svg": LineSVG("Monthly Profit Projections - SaaS Scenario Modeling", "Month", "Profit (USD)",
			scenarioSeries(ps, func(p scenario.Projection) []float64 { return p.Result.Profit })),
		"cumulative_profit.svg": LineSVG("Cumulative Profit Over Time", "Month", "Cumulative Profit (USD)",
			scenarioSeries(ps, func(p scenario.Projection) []float64 { return metrics.Cumulative(p.Result.Profit) })),
	}

	base, ok := scenario.Find(ps, scenario.Base)
	if !ok {
		return files
	}

	files["customers.svg"] = LineSVG("Customer Growth (Base Scenario)", "Month", "Number of Customers", []Series{
		{Name: "Customers", Color: strokes[scenario.Base].color, Start: 0, Values: base.Customers, Markers: true},
	})
	files["revenue_vs_cost.svg"] = LineSVG("Revenue vs Costs (Base Scenario)", "Month", "Amount (USD)", []Series{
		{Name: "Revenue", Color: "#2ca02c", Start: 1, Values: base.Result.Revenue},
		{Name: "Costs", Color: "#d62728", Start: 1, Values: base.Result.Cost},
	})
	files["profit_bars.svg"] = BarSVG("Monthly Profit - Base Scenario", "Month", "Profit (USD)", base.Result.Profit, "#87ceeb")

	return files
}

// WriteSVGs writes every chart into dir, creating it if needed, and
// returns the written paths.
func WriteSVGs(dir string, ps []scenario.Projection) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	files := SVGFiles(ps)
	names := []string{"monthly_profit.svg", "cumulative_profit.svg", "customers.svg", "revenue_vs_cost.svg", "profit_bars.svg"}

	var written []string
	for _, name := range names {
		content, ok := files[name]
		if !ok {
			continue
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
