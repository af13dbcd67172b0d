// Package render produces SVG snapshots of a laid-out timeline window.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/yanchr/history-arrow-2/internal/timeline"
	"github.com/yanchr/history-arrow-2/internal/timeline/cluster"
	"github.com/yanchr/history-arrow-2/internal/timeline/minimap"
	"github.com/yanchr/history-arrow-2/internal/timeline/scale"
	"github.com/yanchr/history-arrow-2/internal/timeline/view"
)

// Options controls the rendered canvas. Zero values fall back to defaults.
type Options struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
	ArrowColor string `yaml:"arrow_color"`
	TextColor  string `yaml:"text_color"`
	FontFamily string `yaml:"font_family"`
	FontSize   int    `yaml:"font_size"`
	LaneGapPx  int    `yaml:"lane_gap_px"`
	MarginPx   int    `yaml:"margin_px"`
}

// DefaultOptions returns the reference canvas settings.
func DefaultOptions() Options {
	return Options{
		Width:      1200,
		Height:     640,
		Background: "#1a1a1f",
		ArrowColor: "#8a8a96",
		TextColor:  "#e8e8ee",
		FontFamily: "Arial, sans-serif",
		FontSize:   12,
		LaneGapPx:  34,
		MarginPx:   40,
	}
}

const defaultMarkerColor = "#4285f4"

// Renderer draws a window of markers as a standalone SVG document.
type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Background == "" {
		opts.Background = def.Background
	}
	if opts.ArrowColor == "" {
		opts.ArrowColor = def.ArrowColor
	}
	if opts.TextColor == "" {
		opts.TextColor = def.TextColor
	}
	if opts.FontFamily == "" {
		opts.FontFamily = def.FontFamily
	}
	if opts.FontSize <= 0 {
		opts.FontSize = def.FontSize
	}
	if opts.LaneGapPx <= 0 {
		opts.LaneGapPx = def.LaneGapPx
	}
	if opts.MarginPx <= 0 {
		opts.MarginPx = def.MarginPx
	}
	return &Renderer{opts: opts}
}

// Snapshot is everything Render needs to draw one frame.
type Snapshot struct {
	Window   view.Window
	Markers  []timeline.Marker
	Ticks    []scale.Tick
	Clusters []cluster.Cluster
	EraBands []minimap.Band
}

// Render draws the snapshot as a complete SVG document.
func (r *Renderer) Render(s Snapshot) string {
	o := r.opts
	plotWidth := float64(o.Width - 2*o.MarginPx)
	axisY := float64(o.Height) * 0.55

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.title-text { font-family: %s; font-size: %dpx; fill: %s; }
.tick-text { font-family: %s; font-size: %dpx; fill: %s; opacity: 0.7; }
.badge-text { font-family: %s; font-size: %dpx; font-weight: bold; fill: #ffffff; }
</style>
</defs>
`, o.Width, o.Height, o.Background,
		o.FontFamily, o.FontSize, o.TextColor,
		o.FontFamily, o.FontSize-2, o.TextColor,
		o.FontFamily, o.FontSize-2))

	r.writeEraBands(&svg, s.EraBands, plotWidth)
	r.writeAxis(&svg, axisY, plotWidth)
	r.writeTicks(&svg, s.Ticks, axisY, plotWidth)
	for _, m := range s.Markers {
		if m.IsSpan {
			r.writeSpan(&svg, m, axisY, plotWidth)
		} else {
			r.writePoint(&svg, m, axisY, plotWidth)
		}
	}
	r.writeClusterBadges(&svg, s.Clusters, axisY, plotWidth)

	svg.WriteString("</svg>\n")
	return svg.String()
}

// x maps a 0..100 window position to a canvas coordinate.
func (r *Renderer) x(positionPercent float64) float64 {
	return float64(r.opts.MarginPx) + positionPercent/100*float64(r.opts.Width-2*r.opts.MarginPx)
}

// laneY stacks lanes alternately above and below the arrow line.
func (r *Renderer) laneY(axisY float64, m timeline.Marker) float64 {
	ring := m.Ring
	if ring < 1 {
		ring = 1
	}
	offset := float64(ring * r.opts.LaneGapPx)
	if m.Below {
		return axisY + offset
	}
	return axisY - offset
}

func (r *Renderer) writeAxis(svg *strings.Builder, axisY, plotWidth float64) {
	o := r.opts
	left := float64(o.MarginPx)
	right := left + plotWidth
	fmt.Fprintf(svg, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>`+"\n",
		left, axisY, right, axisY, o.ArrowColor)
	// Arrowhead on the recent end.
	fmt.Fprintf(svg, `<path d="M %.1f %.1f L %.1f %.1f L %.1f %.1f Z" fill="%s"/>`+"\n",
		right, axisY-6, right+12, axisY, right, axisY+6, o.ArrowColor)
}

func (r *Renderer) writeEraBands(svg *strings.Builder, bands []minimap.Band, plotWidth float64) {
	o := r.opts
	bandY := o.Height - o.MarginPx/2 - 8
	for _, b := range bands {
		x := r.x(b.Rect.Left)
		w := b.Rect.Width / 100 * plotWidth
		if w <= 0 {
			continue
		}
		fmt.Fprintf(svg, `<rect x="%.1f" y="%d" width="%.1f" height="8" fill="%s"/>`+"\n",
			x, bandY, w, b.Era.Color)
	}
}

func (r *Renderer) writeTicks(svg *strings.Builder, ticks []scale.Tick, axisY, plotWidth float64) {
	o := r.opts
	for _, t := range ticks {
		x := r.x(t.Position)
		fmt.Fprintf(svg, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
			x, axisY-4, x, axisY+4, o.ArrowColor)
		fmt.Fprintf(svg, `<text x="%.1f" y="%.1f" text-anchor="middle" class="tick-text">%s</text>`+"\n",
			x, axisY+float64(o.FontSize)+8, html.EscapeString(t.Label))
	}
}

func (r *Renderer) writeSpan(svg *strings.Builder, m timeline.Marker, axisY, plotWidth float64) {
	left := r.x(min(m.StartPos, m.EndPos))
	right := r.x(max(m.StartPos, m.EndPos))
	y := r.laneY(axisY, m)
	color := m.Color
	if color == "" {
		color = defaultMarkerColor
	}
	opacity := 1.0
	if m.Dimmed {
		opacity = 0.25
	}
	fmt.Fprintf(svg, `<rect x="%.1f" y="%.1f" width="%.1f" height="10" rx="5" fill="%s" opacity="%.2f"/>`+"\n",
		left, y-5, right-left, color, opacity)
	if m.LabelVisible {
		fmt.Fprintf(svg, `<text x="%.1f" y="%.1f" class="title-text" opacity="%.2f">%s</text>`+"\n",
			left, y-9, opacity, html.EscapeString(m.Title))
	}
}

func (r *Renderer) writePoint(svg *strings.Builder, m timeline.Marker, axisY, plotWidth float64) {
	x := r.x(m.StartPos) + m.FisheyeOffset/100*plotWidth
	y := r.laneY(axisY, m)
	color := m.Color
	if color == "" {
		color = defaultMarkerColor
	}
	opacity := 1.0
	if m.Dimmed {
		opacity = 0.25
	}
	fmt.Fprintf(svg, `<circle cx="%.1f" cy="%.1f" r="5" fill="%s" opacity="%.2f"/>`+"\n",
		x, y, color, opacity)
	// Stem connecting the marker to the arrow line.
	fmt.Fprintf(svg, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1" opacity="%.2f"/>`+"\n",
		x, y, x, axisY, color, opacity/2)
	if m.LabelVisible {
		fmt.Fprintf(svg, `<text x="%.1f" y="%.1f" text-anchor="middle" class="title-text" opacity="%.2f">%s</text>`+"\n",
			x, y-10, opacity, html.EscapeString(m.Title))
	}
}

func (r *Renderer) writeClusterBadges(svg *strings.Builder, clusters []cluster.Cluster, axisY, plotWidth float64) {
	for _, c := range clusters {
		x := r.x(c.Position)
		fmt.Fprintf(svg, `<circle cx="%.1f" cy="%.1f" r="11" fill="#d9643a" stroke="#ffffff" stroke-width="1.5"/>`+"\n",
			x, axisY)
		fmt.Fprintf(svg, `<text x="%.1f" y="%.1f" text-anchor="middle" class="badge-text">%d</text>`+"\n",
			x, axisY+4, c.Count)
	}
}
