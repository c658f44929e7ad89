package schematic

import (
	"fmt"
	"strings"
)

// Fixed canvas geometry. Width is constant; height comes from the scene.
// Margins leave room for arm labels on the left and the legend up top.
const (
	svgWidth        = 1200
	svgMarginLeft   = 100
	svgMarginRight  = 50
	svgMarginTop    = 100
	svgMarginBottom = 100
)

var svgEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// RenderSVG maps a scene to a standalone SVG document. A nil scene renders
// to nil; callers show their empty state instead.
func RenderSVG(sc *Scene) []byte {
	if sc == nil {
		return nil
	}

	plotW := float64(svgWidth - svgMarginLeft - svgMarginRight)
	plotH := float64(sc.Height - svgMarginTop - svgMarginBottom)
	xSpan := sc.XRange[1] - sc.XRange[0]
	if xSpan == 0 {
		xSpan = 1
	}
	ySpan := sc.YRange[1] - sc.YRange[0]
	if ySpan == 0 {
		ySpan = 1
	}

	// Data space to pixels. Row 0 sits at the top, so data y grows downward.
	xScale := func(x float64) float64 {
		return svgMarginLeft + (x-sc.XRange[0])/xSpan*plotW
	}
	yScale := func(y float64) float64 {
		return svgMarginTop + (y-sc.YRange[0])/ySpan*plotH
	}
	// Paper coordinates span the plot area, y up; values above 1 reach into
	// the top margin, which is where the legend lives.
	paperX := func(x float64) float64 { return svgMarginLeft + x*plotW }
	paperY := func(y float64) float64 { return svgMarginTop + (1-y)*plotH }

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="white"/>
<defs>
<style>
.title { font-family: sans-serif; font-size: 16px; font-weight: bold; fill: black; }
.axis-title { font-family: sans-serif; font-size: 13px; fill: black; }
.arm-label { font-family: sans-serif; font-size: 14px; font-weight: bold; fill: black; }
.seg-label { font-family: sans-serif; font-size: 10px; fill: white; }
.tick-label { font-family: sans-serif; font-size: 10px; fill: gray; }
.arrow-glyph { font-family: sans-serif; font-size: 16px; fill: black; }
.legend-label { font-family: sans-serif; font-size: 12px; font-weight: bold; }
</style>
</defs>
`, svgWidth, sc.Height))

	for _, b := range sc.Bands {
		svg.WriteString(fmt.Sprintf(
			"<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" fill=\"%s\" opacity=\"0.3\" stroke=\"gray\" stroke-width=\"1\" stroke-dasharray=\"2,3\"/>\n",
			xScale(b.X0), yScale(b.Y0), xScale(b.X1)-xScale(b.X0), yScale(b.Y1)-yScale(b.Y0), b.Fill))
	}

	rowCount := float64(len(sc.Rows))
	for _, g := range sc.Gridlines {
		x := xScale(float64(g.Hour))
		svg.WriteString(fmt.Sprintf(
			"<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"lightgray\" stroke-width=\"1\" stroke-dasharray=\"2,2\"/>\n",
			x, yScale(-0.5), x, yScale(rowCount-0.5)))
		svg.WriteString(fmt.Sprintf(
			"<text x=\"%.1f\" y=\"%.1f\" class=\"tick-label\" text-anchor=\"middle\">%dh</text>\n",
			x, yScale(-0.8), g.Hour))
	}

	for _, r := range sc.Rects {
		svg.WriteString(fmt.Sprintf(
			"<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" fill=\"%s\" fill-opacity=\"0.8\" stroke=\"black\" stroke-width=\"2\"/>\n",
			xScale(r.X0), yScale(r.Y0), xScale(r.X1)-xScale(r.X0), yScale(r.Y1)-yScale(r.Y0), r.Fill))
	}

	for _, l := range sc.Labels {
		writeSegmentLabel(&svg, l, xScale, yScale)
	}

	for _, a := range sc.Arrows {
		hx, tx, y := xScale(a.HeadX), xScale(a.TailX), yScale(a.Y)
		svg.WriteString(fmt.Sprintf(
			"<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"black\" stroke-width=\"3\"/>\n",
			tx, y, hx, y))
		svg.WriteString(fmt.Sprintf(
			"<polygon points=\"%.1f,%.1f %.1f,%.1f %.1f,%.1f\" fill=\"black\"/>\n",
			hx, y, hx+6, y-3.5, hx+6, y+3.5))
		svg.WriteString(fmt.Sprintf(
			"<text x=\"%.1f\" y=\"%.1f\" class=\"arrow-glyph\" text-anchor=\"middle\">→</text>\n",
			xScale((a.HeadX+a.TailX)/2), yScale(a.Y+0.1)))
	}

	for _, row := range sc.Rows {
		svg.WriteString(fmt.Sprintf(
			"<text x=\"%.1f\" y=\"%.1f\" class=\"arm-label\" text-anchor=\"end\" dominant-baseline=\"middle\">%s</text>\n",
			xScale(-20), yScale(float64(row.Index)), svgEscaper.Replace(row.ArmID)))
	}

	svg.WriteString(fmt.Sprintf(
		"<text x=\"%d\" y=\"40\" class=\"title\" text-anchor=\"middle\">%s</text>\n",
		svgWidth/2, svgEscaper.Replace(sc.Title)))
	svg.WriteString(fmt.Sprintf(
		"<text x=\"%d\" y=\"%d\" class=\"axis-title\" text-anchor=\"middle\">%s</text>\n",
		svgWidth/2, sc.Height-30, svgEscaper.Replace(sc.XAxisTitle)))
	svg.WriteString(fmt.Sprintf(
		"<text x=\"25\" y=\"%d\" class=\"axis-title\" text-anchor=\"middle\" transform=\"rotate(-90 25 %d)\">%s</text>\n",
		sc.Height/2, sc.Height/2, svgEscaper.Replace(sc.YAxisTitle)))

	for _, entry := range sc.Legend {
		svg.WriteString(fmt.Sprintf(
			"<text x=\"%.1f\" y=\"%.1f\" class=\"legend-label\" fill=\"%s\">%s</text>\n",
			paperX(entry.X), paperY(entry.Y), entry.Color, svgEscaper.Replace(entry.Text)))
	}

	svg.WriteString("</svg>\n")
	return []byte(svg.String())
}

// writeSegmentLabel draws the dark backdrop and the centered text block of
// one segment label. Text extents are estimated from character counts.
func writeSegmentLabel(svg *strings.Builder, l Label, xScale, yScale func(float64) float64) {
	x, y := xScale(l.X), yScale(l.Y)

	maxLen := 0
	for _, line := range l.Lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	boxW := float64(maxLen)*6.0 + 8
	boxH := float64(len(l.Lines))*12.0 + 6
	svg.WriteString(fmt.Sprintf(
		"<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" fill=\"rgba(0,0,0,0.7)\" stroke=\"black\" stroke-width=\"1\"/>\n",
		x-boxW/2, y-boxH/2, boxW, boxH))

	svg.WriteString(fmt.Sprintf("<text x=\"%.1f\" y=\"%.1f\" class=\"seg-label\" text-anchor=\"middle\">", x, y))
	firstDy := -1.1*float64(len(l.Lines)-1)/2 + 0.35
	for i, line := range l.Lines {
		dy := "1.1em"
		if i == 0 {
			dy = fmt.Sprintf("%.2fem", firstDy)
		}
		svg.WriteString(fmt.Sprintf("<tspan x=\"%.1f\" dy=\"%s\">%s</tspan>", x, dy, svgEscaper.Replace(line)))
	}
	svg.WriteString("</text>\n")
}
