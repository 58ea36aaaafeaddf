package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/elyanlabs/grazer/api/platform"
	"github.com/spf13/cobra"
)

const (
	clawHubURL   = "https://clawhub.ai"
	summaryWidth = 80
)

var (
	skillLimit int

	clawhubCmd = &cobra.Command{
		Use:   "clawhub",
		Short: "Browse the ClawHub skill registry",
	}

	skillSearchCmd = &cobra.Command{
		Use:   "search <query...>",
		Short: "Search skills",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSkillSearch,
	}

	skillTrendingCmd = &cobra.Command{
		Use:   "trending",
		Short: "List the most installed skills",
		Args:  cobra.NoArgs,
		RunE:  runSkillTrending,
	}

	skillExploreCmd = &cobra.Command{
		Use:   "explore",
		Short: "List recently updated skills",
		Args:  cobra.NoArgs,
		RunE:  runSkillExplore,
	}

	skillInfoCmd = &cobra.Command{
		Use:   "info <slug>",
		Short: "Show one skill",
		Args:  cobra.ExactArgs(1),
		RunE:  runSkillInfo,
	}
)

func init() {
	clawhubCmd.PersistentFlags().IntVarP(&skillLimit, "limit", "l", 0, "Maximum number of skills")
	clawhubCmd.AddCommand(skillSearchCmd, skillTrendingCmd, skillExploreCmd, skillInfoCmd)
}

func runSkillSearch(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")
	skills, err := client.SearchSkills(cmd.Context(), query, skillLimit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if jsonFlag {
		return writeJSON(out, skills)
	}
	writeSkills(out, query, skills)
	return nil
}

func runSkillTrending(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	skills, err := client.TrendingSkills(cmd.Context(), skillLimit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if jsonFlag {
		return writeJSON(out, skills)
	}
	writeRanking(out, skills)
	return nil
}

func runSkillExplore(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	skills, err := client.ExploreSkills(cmd.Context(), skillLimit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if jsonFlag {
		return writeJSON(out, skills)
	}
	writeRanking(out, skills)
	return nil
}

func runSkillInfo(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	skill, err := client.Skill(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if jsonFlag {
		return writeJSON(out, skill)
	}
	writeSkill(out, args[0], skill)
	return nil
}

func writeSkills(w io.Writer, query string, skills []platform.Item) {
	fmt.Fprintf(w, "ClawHub search: %q\n\n", query)
	if len(skills) == 0 {
		fmt.Fprintln(w, "  No skills found.")
		return
	}
	for _, s := range skills {
		slug := s.String("slug")
		fmt.Fprintf(w, "  %s (%s)\n", skillName(s), orUnknown(slug))
		if summary := truncate(s.String("summary"), summaryWidth); summary != "" {
			fmt.Fprintf(w, "    %s\n", summary)
		}
		fmt.Fprintf(w, "    %s downloads | %s versions | %s/%s\n\n",
			count(s, "stats.downloads"), count(s, "stats.versions"), clawHubURL, slug)
	}
}

func writeRanking(w io.Writer, skills []platform.Item) {
	for i, s := range skills {
		fmt.Fprintf(w, "  %d. %s (%s downloads)\n", i+1, skillName(s), count(s, "stats.downloads"))
	}
}

// writeSkill prints a skill detail, which nests the skill beside its owner and latest version
func writeSkill(w io.Writer, slug string, detail platform.Item) {
	info := detail
	if nested, ok := detail["skill"].(map[string]any); ok {
		info = platform.Item(nested)
	}
	if s := info.String("slug"); s != "" {
		slug = s
	}
	name := info.String("displayName")
	if name == "" {
		name = slug
	}
	fmt.Fprintln(w, name)
	fmt.Fprintf(w, "  Slug: %s\n", slug)
	if summary := info.String("summary"); summary != "" {
		fmt.Fprintf(w, "  Summary: %s\n", summary)
	}
	fmt.Fprintf(w, "  Owner: @%s\n", orUnknown(text(lookup(detail, "owner.handle"))))
	fmt.Fprintf(w, "  Version: %s\n", orUnknown(text(lookup(detail, "latestVersion.version"))))
	fmt.Fprintf(w, "  Downloads: %s\n", count(info, "stats.downloads"))
	fmt.Fprintf(w, "  Stars: %s\n", count(info, "stats.stars"))
	if changelog := text(lookup(detail, "latestVersion.changelog")); changelog != "" {
		fmt.Fprintf(w, "  Changelog: %s\n", changelog)
	}
	fmt.Fprintf(w, "  URL: %s/%s\n", clawHubURL, slug)
}

func skillName(s platform.Item) string {
	return orUnknown(s.String("displayName", "slug"))
}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width-3]) + "..."
}

// lookup walks a dotted path through nested objects
func lookup(item platform.Item, path string) any {
	var v any = map[string]any(item)
	for _, key := range strings.Split(path, ".") {
		m, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		v = m[key]
	}
	return v
}

func text(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case map[string]any:
		return platform.Item(v).String("name", "slug")
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// count renders a numeric field, zero when absent
func count(item platform.Item, path string) string {
	if s := text(lookup(item, path)); s != "" {
		return s
	}
	return "0"
}

func stringList(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s := text(e); s != "" {
			out = append(out, s)
		}
	}
	return out
}
