package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/elyanlabs/grazer/api"
	"github.com/elyanlabs/grazer/api/adapterimpl"
	"github.com/elyanlabs/grazer/api/platform"
	"github.com/elyanlabs/grazer/api/registry"
	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

func testRegistry() *registry.Registry {
	return registry.New(adapterimpl.All(adapterimpl.Settings{})...)
}

func TestPlatformsFlag(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    []platform.ID
		wantErr ErrorCode
	}{
		{
			name:   "single",
			values: []string{"fourclaw"},
			want:   []platform.ID{platform.FourClaw},
		},
		{
			name:   "comma separated and repeated",
			values: []string{"moltbook,BoTTube", "moltbook"},
			want:   []platform.ID{platform.Moltbook, platform.BoTTube},
		},
		{
			name:   "all selects nothing explicitly",
			values: []string{"all"},
			want:   nil,
		},
		{
			name:    "unknown",
			values:  []string{"myspace"},
			wantErr: InvalidPlatform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f platformsFlag
			var err error
			for _, v := range tt.values {
				if err = f.Set(v); err != nil {
					break
				}
			}
			if tt.wantErr != "" {
				if !failure.Is(err, tt.wantErr) {
					t.Fatalf("Set() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, f.IDs); diff != "" {
				t.Errorf("IDs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPlatformsFlagSingle(t *testing.T) {
	var f platformsFlag
	if _, err := f.Single(); !failure.Is(err, PlatformRequired) {
		t.Errorf("Single() on empty flag error = %v, want %v", err, PlatformRequired)
	}

	if err := f.Set("agentchan"); err != nil {
		t.Fatal(err)
	}
	id, err := f.Single()
	if err != nil {
		t.Fatalf("Single() error = %v", err)
	}
	if id != platform.AgentChan {
		t.Errorf("Single() = %v, want %v", id, platform.AgentChan)
	}
}

func TestWriteReport(t *testing.T) {
	report := &api.Report{
		Order: []platform.ID{platform.FourClaw, platform.ClawTasks, platform.Directory},
		Results: map[platform.ID]platform.DiscoveryResult{
			platform.FourClaw:  {Platform: platform.FourClaw, Items: []platform.Item{{"id": "1"}, {"id": "2"}}},
			platform.ClawTasks: {Platform: platform.ClawTasks, Items: []platform.Item{}},
			platform.Directory: {Platform: platform.Directory, Items: []platform.Item{{"name": "x"}}},
		},
		Errors: map[platform.ID]api.ErrorRecord{
			platform.ClawTasks: {Code: platform.ErrCredentialMissing, Message: "ClawTasks API key required"},
		},
	}

	var buf bytes.Buffer
	writeReport(&buf, testRegistry(), report)

	want := "  4claw threads: 2\n" +
		"  ClawTasks bounties: OFFLINE (ClawTasks API key required)\n" +
		"  Directory services: 1\n" +
		"\n  Total: 3 items\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteStatus(t *testing.T) {
	records := []platform.StatusRecord{
		{Platform: platform.BoTTube, Reachable: true, LatencyMS: 120.4, AuthConfigured: true},
		{Platform: platform.ClawTasks, Reachable: false, Error: "ClawTasks API key required"},
	}

	var buf bytes.Buffer
	writeStatus(&buf, testRegistry(), records, false)

	want := "  [UP]   BoTTube           120ms  [key]\n" +
		"  [DOWN] ClawTasks           0ms  [---]\n" +
		"         ClawTasks API key required\n" +
		"\n  1/2 platforms reachable\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("status mismatch (-want +got):\n%s", diff)
	}
}

func TestItemsMarkdown(t *testing.T) {
	desc, err := testRegistry().Lookup(platform.BoTTube)
	if err != nil {
		t.Fatal(err)
	}
	res := platform.DiscoveryResult{
		Platform:  platform.BoTTube,
		FetchedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Items: []platform.Item{
			{"title": "Retro boot", "stream_url": "https://bottube.ai/api/videos/v1/stream", "agent_name": "sophia"},
			{"description": strings.Repeat("a", excerptWidth+10)},
		},
	}

	md := itemsMarkdown(desc, res)

	for _, want := range []string{
		"# BoTTube videos",
		"*fetched 2026-01-02 03:04:05*",
		"## [Retro boot](https://bottube.ai/api/videos/v1/stream)",
		"*by sophia*",
		"## (untitled)",
		strings.Repeat("a", excerptWidth) + "...",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestItemsMarkdownEmpty(t *testing.T) {
	desc, err := testRegistry().Lookup(platform.MoltX)
	if err != nil {
		t.Fatal(err)
	}
	md := itemsMarkdown(desc, platform.DiscoveryResult{Platform: platform.MoltX})
	if !strings.Contains(md, "Nothing found.") {
		t.Errorf("markdown = %q, want empty notice", md)
	}
}

func TestPagerFind(t *testing.T) {
	m := NewPager("alpha\nBeta\ngamma beta")

	m.find("beta")
	if diff := cmp.Diff([]int{1, 2}, m.search.lines); diff != "" {
		t.Errorf("case-insensitive lines mismatch (-want +got):\n%s", diff)
	}

	m.find("Beta")
	if diff := cmp.Diff([]int{1}, m.search.lines); diff != "" {
		t.Errorf("case-sensitive lines mismatch (-want +got):\n%s", diff)
	}

	m.find("beta")
	m.jump(1)
	if m.search.current != 1 {
		t.Errorf("current = %d after jump, want 1", m.search.current)
	}
	m.jump(1)
	if m.search.current != 0 {
		t.Errorf("current = %d after wrap, want 0", m.search.current)
	}
}

func TestWriteStats(t *testing.T) {
	stats := platform.Item{
		"total_videos": float64(1204),
		"total_views":  float64(98000),
		"categories":   []any{"music", map[string]any{"name": "retro"}},
	}

	var buf bytes.Buffer
	writeStats(&buf, "BoTTube", stats)

	want := "BoTTube Stats\n" +
		"  Total Videos: 1204\n" +
		"  Total Views: 98000\n" +
		"  Total Agents: 0\n" +
		"  Categories: music, retro\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteSkills(t *testing.T) {
	tests := []struct {
		name   string
		skills []platform.Item
		want   string
	}{
		{
			name:   "empty",
			skills: nil,
			want:   "ClawHub search: \"svg\"\n\n  No skills found.\n",
		},
		{
			name: "long summary is cut",
			skills: []platform.Item{{
				"displayName": "SVG Forge",
				"slug":        "svg-forge",
				"summary":     strings.Repeat("x", 100),
				"stats":       map[string]any{"downloads": float64(42), "versions": float64(3)},
			}},
			want: "ClawHub search: \"svg\"\n\n" +
				"  SVG Forge (svg-forge)\n" +
				"    " + strings.Repeat("x", 77) + "...\n" +
				"    42 downloads | 3 versions | https://clawhub.ai/svg-forge\n\n",
		},
		{
			name:   "missing fields",
			skills: []platform.Item{{"slug": "bare"}},
			want: "ClawHub search: \"svg\"\n\n" +
				"  bare (bare)\n" +
				"    0 downloads | 0 versions | https://clawhub.ai/bare\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writeSkills(&buf, "svg", tt.skills)
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("skills mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteRanking(t *testing.T) {
	skills := []platform.Item{
		{"displayName": "Grazer", "stats": map[string]any{"downloads": float64(900)}},
		{"slug": "beacon"},
	}

	var buf bytes.Buffer
	writeRanking(&buf, skills)

	want := "  1. Grazer (900 downloads)\n" +
		"  2. beacon (0 downloads)\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("ranking mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteSkill(t *testing.T) {
	detail := platform.Item{
		"skill": map[string]any{
			"slug":        "grazer",
			"displayName": "Grazer",
			"summary":     "Graze agent platforms",
			"stats":       map[string]any{"downloads": float64(1500), "stars": float64(12)},
		},
		"owner":         map[string]any{"handle": "elyan"},
		"latestVersion": map[string]any{"version": "1.5.0", "changelog": "ClawHub support"},
	}

	var buf bytes.Buffer
	writeSkill(&buf, "ignored", detail)

	want := "Grazer\n" +
		"  Slug: grazer\n" +
		"  Summary: Graze agent platforms\n" +
		"  Owner: @elyan\n" +
		"  Version: 1.5.0\n" +
		"  Downloads: 1500\n" +
		"  Stars: 12\n" +
		"  Changelog: ClawHub support\n" +
		"  URL: https://clawhub.ai/grazer\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("skill mismatch (-want +got):\n%s", diff)
	}
}
