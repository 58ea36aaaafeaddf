package imagegen

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
)

// Template is a parametrized SVG layout
type Template string

const (
	TemplateCircuit  Template = "circuit"
	TemplateWave     Template = "wave"
	TemplateGrid     Template = "grid"
	TemplateBadge    Template = "badge"
	TemplateTerminal Template = "terminal"
)

// Templates lists the catalog in resolution order
var Templates = []Template{TemplateCircuit, TemplateWave, TemplateGrid, TemplateBadge, TemplateTerminal}

// Palette is a named set of colors substituted into a template
type Palette struct {
	Name       string
	Background string
	Primary    string
	Secondary  string
	Accent     string
	Text       string
}

// Colors returns every color of the palette
func (p Palette) Colors() []string {
	return []string{p.Background, p.Primary, p.Secondary, p.Accent, p.Text}
}

// Palettes lists the catalog in resolution order
var Palettes = []Palette{
	{Name: "tech", Background: "#0a0e27", Primary: "#00d4ff", Secondary: "#0077b6", Accent: "#90e0ef", Text: "#e0fbfc"},
	{Name: "crypto", Background: "#1a1a2e", Primary: "#f7931a", Secondary: "#ffd700", Accent: "#16c784", Text: "#fafafa"},
	{Name: "retro", Background: "#2b1b17", Primary: "#ff6f3c", Secondary: "#ffc93c", Accent: "#155263", Text: "#fff6e0"},
	{Name: "nature", Background: "#1b2d1b", Primary: "#52b788", Secondary: "#95d5b2", Accent: "#d8f3dc", Text: "#f1faee"},
	{Name: "dark", Background: "#0d0d0d", Primary: "#bb86fc", Secondary: "#3700b3", Accent: "#03dac6", Text: "#e1e1e1"},
	{Name: "fire", Background: "#1f0a0a", Primary: "#ff4500", Secondary: "#ff8c00", Accent: "#ffd166", Text: "#fff1e6"},
	{Name: "ocean", Background: "#03045e", Primary: "#0096c7", Secondary: "#48cae4", Accent: "#ade8f4", Text: "#caf0f8"},
}

var templateKeywords = map[Template][]string{
	TemplateCircuit:  {"circuit", "chip", "cpu", "hardware", "silicon", "electronic", "pcb"},
	TemplateWave:     {"wave", "audio", "music", "signal", "sound", "radio", "flow"},
	TemplateGrid:     {"grid", "matrix", "pixel", "data", "chart", "map"},
	TemplateBadge:    {"badge", "logo", "award", "icon", "emblem", "shield"},
	TemplateTerminal: {"terminal", "code", "shell", "console", "hack", "cli", "linux"},
}

var paletteKeywords = map[string][]string{
	"tech":   {"tech", "ai", "cyber", "robot", "agent", "digital"},
	"crypto": {"crypto", "bitcoin", "token", "blockchain", "coin", "defi", "rtc"},
	"retro":  {"retro", "vintage", "80s", "90s", "arcade", "classic"},
	"nature": {"nature", "forest", "tree", "plant", "green", "garden"},
	"dark":   {"dark", "night", "shadow", "noir", "void"},
	"fire":   {"fire", "flame", "hot", "burn", "lava"},
	"ocean":  {"ocean", "sea", "water", "blue", "deep", "marine"},
}

// ResolveTemplate returns the explicit template when given, otherwise the first
// template whose keywords appear in the prompt, otherwise a stable hash pick.
func ResolveTemplate(prompt, explicit string) (Template, error) {
	if explicit != "" {
		t := Template(strings.ToLower(explicit))
		if !lo.Contains(Templates, t) {
			return "", unknownOption("template", explicit)
		}
		return t, nil
	}
	words := promptWords(prompt)
	for _, t := range Templates {
		if lo.Some(words, templateKeywords[t]) {
			return t, nil
		}
	}
	return Templates[hashIndex("template:"+prompt, len(Templates))], nil
}

// ResolvePalette resolves the palette the same way as ResolveTemplate
func ResolvePalette(prompt, explicit string) (Palette, error) {
	if explicit != "" {
		p, ok := lo.Find(Palettes, func(p Palette) bool { return p.Name == strings.ToLower(explicit) })
		if !ok {
			return Palette{}, unknownOption("palette", explicit)
		}
		return p, nil
	}
	words := promptWords(prompt)
	for _, p := range Palettes {
		if lo.Some(words, paletteKeywords[p.Name]) {
			return p, nil
		}
	}
	return Palettes[hashIndex("palette:"+prompt, len(Palettes))], nil
}

func promptWords(prompt string) []string {
	return strings.FieldsFunc(strings.ToLower(prompt), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
}

func hashIndex(s string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(s))
	return int(h.Sum32() % uint32(n))
}

func unknownOption(kind, name string) error {
	return failure.New(ErrUnknownOption,
		failure.Message(fmt.Sprintf("unknown %s: %s", kind, name)),
		failure.Context{
			kind: name,
		},
	)
}
