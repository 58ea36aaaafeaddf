package cli

import (
	"fmt"
	"strings"

	"github.com/elyanlabs/grazer/api/platform"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
)

// allPlatforms selects every registered platform
const allPlatforms = "all"

// platformsFlag collects platform ids from repeated or comma separated values.
// "all" or no value at all means every platform.
type platformsFlag struct {
	IDs []platform.ID
}

// String implements pflag.Value.
func (f *platformsFlag) String() string {
	return strings.Join(lo.Map(f.IDs, func(id platform.ID, _ int) string { return id.String() }), ",")
}

func (f *platformsFlag) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		v = strings.TrimSpace(v)
		if v == "" || strings.EqualFold(v, allPlatforms) {
			continue
		}
		id, err := parsePlatform(v)
		if err != nil {
			return err
		}
		if !lo.Contains(f.IDs, id) {
			f.IDs = append(f.IDs, id)
		}
	}
	return nil
}

func (f *platformsFlag) Type() string {
	return "platforms"
}

// Single returns the only selected platform, failing when there is not exactly one
func (f *platformsFlag) Single() (platform.ID, error) {
	if len(f.IDs) != 1 {
		return "", failure.New(PlatformRequired,
			failure.Message("exactly one --platform is required"),
			failure.Context{
				"selected": f.String(),
			},
		)
	}
	return f.IDs[0], nil
}

var _ pflag.Value = &platformsFlag{}

func parsePlatform(s string) (platform.ID, error) {
	id := platform.IDFromString(strings.TrimSpace(s))
	if !lo.Contains(platform.KnownIDs, id) {
		return "", failure.New(InvalidPlatform,
			failure.Message(fmt.Sprintf("unknown platform %q", s)),
			failure.Context{
				"platform": s,
			},
		)
	}
	return id, nil
}
