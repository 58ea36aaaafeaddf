package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/elyanlabs/grazer/api"
	"github.com/elyanlabs/grazer/api/imagegen"
	"github.com/elyanlabs/grazer/api/platform"
	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

var validate = validator.New()

// InitTools returns every tool backed by client
func InitTools(client *api.Client) []server.ServerTool {
	return []server.ServerTool{
		newServerTool(DiscoverContent(client)),
		newServerTool(PlatformStatus(client)),
		newServerTool(GenerateImage(client)),
		newServerTool(SearchSkills(client)),
	}
}

func DiscoverContent(client *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"discover_content",
			mcp.WithDescription("Discover trending content on AI agent platforms. One platform returns its items, several return a per-platform report."),
			mcp.WithString("platform", mcp.Description("Platform ids, comma separated, or \"all\" (default all)")),
			mcp.WithNumber("limit", mcp.Description("Items per platform, 1-100")),
			mcp.WithString("board", mcp.Description("Board, submolt, category or colony")),
			mcp.WithString("query", mcp.Description("Search query where supported")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Platform string `mapstructure:"platform" validate:"omitempty"`
				Limit    int    `mapstructure:"limit" validate:"omitempty,min=1,max=100"`
				Board    string `mapstructure:"board" validate:"omitempty"`
				Query    string `mapstructure:"query" validate:"omitempty"`
			}
			var args ToolArguments
			if err := decode(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			opts := platform.DiscoverOptions{
				Limit: args.Limit,
				Board: args.Board,
				Query: args.Query,
			}
			ids := parseIDs(args.Platform)
			if len(ids) == 1 {
				res, err := client.DiscoverOne(ctx, ids[0], opts)
				if err != nil {
					return mcp.NewToolResultError(platform.MessageOf(err)), nil
				}
				return jsonResult(res)
			}

			report, err := client.DiscoverWith(ctx, opts, ids...)
			if err != nil {
				return mcp.NewToolResultError(platform.MessageOf(err)), nil
			}
			return jsonResult(report)
		}
}

func PlatformStatus(client *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"platform_status",
			mcp.WithDescription("Check reachability, latency and credential state of AI agent platforms"),
			mcp.WithString("platform", mcp.Description("Platform ids, comma separated, or \"all\" (default all)")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Platform string `mapstructure:"platform" validate:"omitempty"`
			}
			var args ToolArguments
			if err := decode(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			records, err := client.Probe(ctx, parseIDs(args.Platform)...)
			if err != nil {
				return mcp.NewToolResultError(platform.MessageOf(err)), nil
			}
			return jsonResult(records)
		}
}

func GenerateImage(client *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"generate_image",
			mcp.WithDescription("Generate an SVG image for a post from a prompt"),
			mcp.WithString("prompt", mcp.Required(), mcp.Description("Image description")),
			mcp.WithString("template", mcp.Description("circuit, wave, grid, badge or terminal")),
			mcp.WithString("palette", mcp.Description("tech, crypto, retro, nature, dark, fire or ocean")),
			mcp.WithBoolean("no_llm", mcp.Description("Skip the language model and render a template")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Prompt   string `mapstructure:"prompt" validate:"required"`
				Template string `mapstructure:"template" validate:"omitempty"`
				Palette  string `mapstructure:"palette" validate:"omitempty"`
				NoLLM    bool   `mapstructure:"no_llm"`
			}
			var args ToolArguments
			if err := decode(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			d, err := client.Synthesize(ctx, imagegen.Request{
				Prompt:    args.Prompt,
				Template:  args.Template,
				Palette:   args.Palette,
				PreferLLM: !args.NoLLM,
			})
			if err != nil {
				return mcp.NewToolResultError(platform.MessageOf(err)), nil
			}
			return jsonResult(d)
		}
}

func SearchSkills(client *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"search_skills",
			mcp.WithDescription("Search the ClawHub skill registry. Without a query, list trending or recently updated skills."),
			mcp.WithString("query", mcp.Description("Search query")),
			mcp.WithString("sort", mcp.Description("trending or updated, used without a query (default trending)")),
			mcp.WithNumber("limit", mcp.Description("Number of skills, 1-100")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Query string `mapstructure:"query" validate:"omitempty"`
				Sort  string `mapstructure:"sort" validate:"omitempty,oneof=trending updated"`
				Limit int    `mapstructure:"limit" validate:"omitempty,min=1,max=100"`
			}
			var args ToolArguments
			if err := decode(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			var (
				skills []platform.Item
				err    error
			)
			switch {
			case args.Query != "":
				skills, err = client.SearchSkills(ctx, args.Query, args.Limit)
			case args.Sort == "updated":
				skills, err = client.ExploreSkills(ctx, args.Limit)
			default:
				skills, err = client.TrendingSkills(ctx, args.Limit)
			}
			if err != nil {
				return mcp.NewToolResultError(platform.MessageOf(err)), nil
			}
			return jsonResult(skills)
		}
}

// decode fills args from the request arguments and validates them
func decode(ctx context.Context, req mcp.CallToolRequest, args any) error {
	if err := mapstructure.Decode(req.Params.Arguments, args); err != nil {
		return err
	}
	return validate.StructCtx(ctx, args)
}

// parseIDs splits a comma separated platform list. "all" and empty select everything.
func parseIDs(s string) []platform.ID {
	var ids []platform.ID
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v == "" || strings.EqualFold(v, "all") {
			continue
		}
		ids = append(ids, platform.IDFromString(v))
	}
	return ids
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
