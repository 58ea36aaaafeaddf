package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/elyanlabs/grazer/api/imagegen"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

var (
	imageOutput   string
	imageTemplate string
	imagePalette  string
	imageNoLLM    bool

	imagegenCmd = &cobra.Command{
		Use:   "imagegen <prompt>",
		Short: "Generate an SVG image",
		Long: `Generate an SVG image from a prompt.

A configured language model is tried first. Without one, or when it
fails, the image is rendered from a built-in template.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImagegen,
	}
)

func init() {
	imagegenCmd.Flags().StringVarP(&imageOutput, "output", "o", "", "Save the SVG to this file")
	imagegenCmd.Flags().StringVar(&imageTemplate, "template", "", "Template: "+templateNames())
	imagegenCmd.Flags().StringVar(&imagePalette, "palette", "", "Palette: "+paletteNames())
	imagegenCmd.Flags().BoolVar(&imageNoLLM, "no-llm", false, "Skip the language model")
}

func templateNames() string {
	names := make([]string, 0, len(imagegen.Templates))
	for _, t := range imagegen.Templates {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func paletteNames() string {
	names := make([]string, 0, len(imagegen.Palettes))
	for _, p := range imagegen.Palettes {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

func runImagegen(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	d, err := client.Synthesize(cmd.Context(), imagegen.Request{
		Prompt:    strings.Join(args, " "),
		Template:  imageTemplate,
		Palette:   imagePalette,
		PreferLLM: !imageNoLLM,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if imageOutput != "" {
		if err := os.WriteFile(imageOutput, []byte(d.SVG), 0o644); err != nil {
			return failure.Wrap(err, failure.WithCode(OutputWriteFailure),
				failure.Message(fmt.Sprintf("saving image to %s failed", imageOutput)),
			)
		}
	}

	if jsonFlag {
		return writeJSON(out, d)
	}

	fmt.Fprintf(out, "  Method:   %s\n", d.Method)
	fmt.Fprintf(out, "  Template: %s\n", d.Template)
	fmt.Fprintf(out, "  Palette:  %s\n", d.Palette)
	fmt.Fprintf(out, "  Size:     %d bytes\n", d.Bytes)
	if imageOutput != "" {
		fmt.Fprintf(out, "  Saved to: %s\n", imageOutput)
		return nil
	}
	fmt.Fprintf(out, "\n%s\n", d.SVG)
	return nil
}
