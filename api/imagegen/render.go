package imagegen

import (
	"encoding/xml"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

const (
	width  = 512
	height = 288

	maxCaptionRunes = 42
)

// Render draws a template with a palette. The output depends only on its arguments.
func Render(prompt string, t Template, p Palette) string {
	r := newRand(prompt, t, p)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, width, height, width, height)
	b.WriteString(`<defs><linearGradient id="g" x1="0" y1="0" x2="1" y2="1">`)
	fmt.Fprintf(&b, `<stop offset="0" stop-color="%s"/><stop offset="0.5" stop-color="%s"/><stop offset="1" stop-color="%s"/>`, p.Primary, p.Secondary, p.Accent)
	b.WriteString(`</linearGradient></defs>`)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, width, height, p.Background)

	switch t {
	case TemplateCircuit:
		drawCircuit(&b, r, p)
	case TemplateWave:
		drawWave(&b, r, p)
	case TemplateGrid:
		drawGrid(&b, r, p)
	case TemplateBadge:
		drawBadge(&b, r, p)
	case TemplateTerminal:
		drawTerminal(&b, r, p, prompt)
	}

	fmt.Fprintf(&b, `<rect x="4" y="4" width="%d" height="%d" fill="none" stroke="url(#g)" stroke-width="4" rx="12"/>`, width-8, height-8)
	if t != TemplateTerminal {
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-family="monospace" font-size="18" text-anchor="middle" fill="%s">%s</text>`,
			width/2, height-24, p.Text, escape(caption(prompt)))
	}
	b.WriteString(`</svg>`)
	return b.String()
}

func newRand(prompt string, t Template, p Palette) *rand.Rand {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s\x00%s\x00%s", prompt, t, p.Name)
	seed := h.Sum64()
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func drawCircuit(b *strings.Builder, r *rand.Rand, p Palette) {
	const step = 24
	colors := []string{p.Primary, p.Secondary}
	for i := 0; i < 14; i++ {
		x := step * (1 + r.IntN(width/step-2))
		y := step * (1 + r.IntN(height/step-3))
		dx := step * (r.IntN(7) - 3)
		dy := step * (r.IntN(5) - 2)
		c := colors[i%len(colors)]
		fmt.Fprintf(b, `<path d="M%d %dH%dV%d" fill="none" stroke="%s" stroke-width="2"/>`, x, y, x+dx, y+dy, c)
		fmt.Fprintf(b, `<circle cx="%d" cy="%d" r="4" fill="%s"/>`, x, y, p.Accent)
		fmt.Fprintf(b, `<circle cx="%d" cy="%d" r="3" fill="%s"/>`, x+dx, y+dy, c)
	}
	fmt.Fprintf(b, `<rect x="%d" y="%d" width="96" height="64" rx="6" fill="%s" stroke="%s" stroke-width="3"/>`,
		width/2-48, height/2-56, p.Background, p.Accent)
	for i := 0; i < 4; i++ {
		fmt.Fprintf(b, `<rect x="%d" y="%d" width="6" height="10" fill="%s"/>`, width/2-36+i*22, height/2-66, p.Primary)
		fmt.Fprintf(b, `<rect x="%d" y="%d" width="6" height="10" fill="%s"/>`, width/2-36+i*22, height/2+8, p.Primary)
	}
}

func drawWave(b *strings.Builder, r *rand.Rand, p Palette) {
	colors := []string{p.Primary, p.Secondary, p.Accent}
	for i := 0; i < 5; i++ {
		amp := 12 + r.IntN(40)
		period := 64 + r.IntN(96)
		base := 60 + i*36
		var d strings.Builder
		fmt.Fprintf(&d, "M0 %d", base)
		for x := 0; x <= width; x += period / 4 {
			y := base + int(float64(amp)*math.Sin(2*math.Pi*float64(x)/float64(period)))
			fmt.Fprintf(&d, " L%d %d", x, y)
		}
		fmt.Fprintf(b, `<path d="%s" fill="none" stroke="%s" stroke-width="%d" stroke-linejoin="round" opacity="0.%d"/>`,
			d.String(), colors[i%len(colors)], 2+r.IntN(3), 5+r.IntN(5))
	}
}

func drawGrid(b *strings.Builder, r *rand.Rand, p Palette) {
	const cell = 32
	colors := []string{p.Primary, p.Secondary, p.Accent}
	for y := 16; y+cell <= height-48; y += cell {
		for x := 16; x+cell <= width-16; x += cell {
			if r.IntN(3) == 0 {
				continue
			}
			fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="%s" opacity="0.%d"/>`,
				x+2, y+2, cell-4, cell-4, colors[r.IntN(len(colors))], 3+r.IntN(7))
		}
	}
}

func drawBadge(b *strings.Builder, r *rand.Rand, p Palette) {
	cx, cy := width/2, height/2-20
	fmt.Fprintf(b, `<circle cx="%d" cy="%d" r="96" fill="%s"/>`, cx, cy, p.Secondary)
	fmt.Fprintf(b, `<circle cx="%d" cy="%d" r="80" fill="none" stroke="%s" stroke-width="6"/>`, cx, cy, p.Accent)

	points := 5 + r.IntN(4)
	inner := 28 + r.IntN(12)
	var pts []string
	for i := 0; i < points*2; i++ {
		radius := 64
		if i%2 == 1 {
			radius = inner
		}
		a := math.Pi*float64(i)/float64(points) - math.Pi/2
		pts = append(pts, fmt.Sprintf("%d,%d", cx+int(float64(radius)*math.Cos(a)), cy+int(float64(radius)*math.Sin(a))))
	}
	fmt.Fprintf(b, `<polygon points="%s" fill="%s"/>`, strings.Join(pts, " "), p.Primary)
}

func drawTerminal(b *strings.Builder, r *rand.Rand, p Palette, prompt string) {
	fmt.Fprintf(b, `<rect x="32" y="24" width="%d" height="%d" rx="8" fill="%s" stroke="%s" stroke-width="2"/>`,
		width-64, height-48, p.Background, p.Secondary)
	fmt.Fprintf(b, `<rect x="32" y="24" width="%d" height="24" rx="8" fill="%s"/>`, width-64, p.Secondary)
	for i, c := range []string{p.Primary, p.Accent, p.Text} {
		fmt.Fprintf(b, `<circle cx="%d" cy="36" r="5" fill="%s"/>`, 50+i*18, c)
	}
	fmt.Fprintf(b, `<text x="48" y="76" font-family="monospace" font-size="15" fill="%s">$ %s</text>`, p.Primary, escape(caption(prompt)))
	for i := 0; i < 6; i++ {
		fmt.Fprintf(b, `<rect x="48" y="%d" width="%d" height="8" rx="2" fill="%s" opacity="0.%d"/>`,
			92+i*20, 60+r.IntN(width-180), p.Accent, 4+r.IntN(6))
	}
	fmt.Fprintf(b, `<rect x="48" y="%d" width="10" height="16" fill="%s"/>`, 92+6*20, p.Text)
}

func caption(prompt string) string {
	s := strings.Join(strings.Fields(prompt), " ")
	if utf8.RuneCountInString(s) <= maxCaptionRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxCaptionRunes-3]) + "..."
}

func escape(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}
