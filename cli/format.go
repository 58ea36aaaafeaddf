package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/elyanlabs/grazer/api"
	"github.com/elyanlabs/grazer/api/adapterimpl"
	"github.com/elyanlabs/grazer/api/platform"
	"github.com/elyanlabs/grazer/api/registry"
)

// itemLabels names what each platform lists
var itemLabels = map[platform.ID]string{
	platform.BoTTube:      "BoTTube videos",
	platform.Moltbook:     "Moltbook posts",
	platform.ClawCities:   "ClawCities sites",
	platform.Clawsta:      "Clawsta posts",
	platform.FourClaw:     "4claw threads",
	platform.PinchedIn:    "PinchedIn posts",
	platform.ClawTasks:    "ClawTasks bounties",
	platform.ClawNews:     "ClawNews stories",
	platform.Directory:    "Directory services",
	platform.AgentChan:    "AgentChan threads",
	platform.TheColony:    "The Colony posts",
	platform.MoltX:        "MoltX posts",
	platform.MoltExchange: "MoltExchange questions",
	platform.SwarmHub:     "SwarmHub agents",
}

const excerptWidth = 280

var (
	upStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	downStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func label(desc platform.Descriptor) string {
	if l, ok := itemLabels[desc.ID]; ok {
		return l
	}
	return desc.Name + " items"
}

func nameOf(reg *registry.Registry, id platform.ID) string {
	desc, err := reg.Lookup(id)
	if err != nil {
		return id.String()
	}
	return desc.Name
}

// writeReport prints one line per platform: its item count or why it is offline
func writeReport(w io.Writer, reg *registry.Registry, r *api.Report) {
	for _, id := range r.Order {
		desc, err := reg.Lookup(id)
		if err != nil {
			desc = platform.Descriptor{ID: id, Name: id.String()}
		}
		if rec, ok := r.Errors[id]; ok {
			fmt.Fprintf(w, "  %s: OFFLINE (%s)\n", label(desc), rec.Message)
			continue
		}
		fmt.Fprintf(w, "  %s: %d\n", label(desc), len(r.Results[id].Items))
	}
	fmt.Fprintf(w, "\n  Total: %d items\n", r.Total())
}

// writeStatus prints the health table. color enables lipgloss styles.
func writeStatus(w io.Writer, reg *registry.Registry, records []platform.StatusRecord, color bool) {
	paint := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}

	up := 0
	for _, rec := range records {
		state := paint(downStyle, "[DOWN]")
		if rec.Reachable {
			state = paint(upStyle, "[UP]  ")
			up++
		}
		key := paint(dimStyle, "[---]")
		if rec.AuthConfigured {
			key = "[key]"
		}
		fmt.Fprintf(w, "  %s %-14s %6.0fms  %s\n", state, nameOf(reg, rec.Platform), rec.LatencyMS, key)
		if !rec.Reachable && rec.Error != "" {
			fmt.Fprintf(w, "         %s\n", paint(dimStyle, rec.Error))
		}
	}
	fmt.Fprintf(w, "\n  %d/%d platforms reachable\n", up, len(records))
}

// itemsMarkdown renders a single platform's items as a markdown document
func itemsMarkdown(desc platform.Descriptor, res platform.DiscoveryResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", label(desc))
	fmt.Fprintf(&b, "*fetched %s*\n\n", res.FetchedAt.Format("2006-01-02 15:04:05"))
	if len(res.Items) == 0 {
		b.WriteString("Nothing found.\n")
		return b.String()
	}

	for _, it := range res.Items {
		title := it.String("title", "headline", "subject", "display_name", "name")
		if title == "" {
			title = "(untitled)"
		}
		if u := it.String("url", "stream_url", "link"); u != "" {
			fmt.Fprintf(&b, "## [%s](%s)\n\n", title, u)
		} else {
			fmt.Fprintf(&b, "## %s\n\n", title)
		}
		if by := it.String("author", "author_name", "agent_name", "agent", "username"); by != "" {
			fmt.Fprintf(&b, "*by %s*\n\n", by)
		}
		if body := it.String("content", "body", "description", "summary", "text"); body != "" {
			fmt.Fprintf(&b, "%s\n\n", excerpt(body))
		}
	}
	return b.String()
}

// excerpt converts markup to markdown and shortens long bodies
func excerpt(s string) string {
	if adapterimpl.LooksLikeHTML(s) {
		if md, err := adapterimpl.Markdown("", s); err == nil && md != "" {
			s = md
		}
	}
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= excerptWidth {
		return s
	}
	return string([]rune(s)[:excerptWidth]) + "..."
}
