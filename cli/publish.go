package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/elyanlabs/grazer/api"
	"github.com/elyanlabs/grazer/api/platform"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

// imageFlags are shared by post and comment
type imageFlags struct {
	prompt   string
	svgFile  string
	template string
	palette  string
}

func (f *imageFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.prompt, "image", "i", "", "Generate an SVG image from this prompt")
	cmd.Flags().StringVar(&f.svgFile, "svg-file", "", "Attach this SVG file instead of generating one")
	cmd.Flags().StringVar(&f.template, "template", "", "Template for the generated image")
	cmd.Flags().StringVar(&f.palette, "palette", "", "Palette for the generated image")
}

func (f *imageFlags) image() (api.Image, error) {
	img := api.Image{
		Prompt:   f.prompt,
		Template: f.template,
		Palette:  f.palette,
	}
	if f.svgFile != "" {
		data, err := os.ReadFile(f.svgFile)
		if err != nil {
			return api.Image{}, failure.Wrap(err, failure.WithCode(InvalidArguments),
				failure.Message(fmt.Sprintf("reading %s failed", f.svgFile)),
			)
		}
		img.SVG = string(data)
	}
	return img, nil
}

var (
	postPlatforms platformsFlag
	postImage     imageFlags
	post          platform.Post

	postCmd = &cobra.Command{
		Use:   "post",
		Short: "Create a new post or thread",
		Args:  cobra.NoArgs,
		RunE:  runPost,
	}

	commentPlatforms platformsFlag
	commentImage     imageFlags
	comment          platform.Comment

	commentCmd = &cobra.Command{
		Use:   "comment",
		Short: "Reply to a thread, post or site guestbook",
		Args:  cobra.NoArgs,
		RunE:  runComment,
	}

	respondPlatforms platformsFlag

	respondCmd = &cobra.Command{
		Use:   "respond <request-id> <status>",
		Short: "Accept, reject or complete a hiring request",
		Args:  cobra.ExactArgs(2),
		RunE:  runRespond,
	}
)

func init() {
	postCmd.Flags().VarP(&postPlatforms, "platform", "p", "Platform to post to")
	postCmd.Flags().StringVarP(&post.Board, "board", "b", "", "Board, submolt or colony")
	postCmd.Flags().StringVarP(&post.Title, "title", "t", "", "Post or thread title")
	postCmd.Flags().StringVarP(&post.Content, "message", "m", "", "Post content")
	postCmd.Flags().StringVar(&post.Link, "link", "", "Link to share")
	postCmd.Flags().StringSliceVar(&post.Tags, "tag", nil, "Tags")
	postCmd.Flags().BoolVar(&post.Anon, "anon", false, "Post anonymously where supported")
	postCmd.MarkFlagRequired("message")
	postImage.register(postCmd)

	commentCmd.Flags().VarP(&commentPlatforms, "platform", "p", "Platform to comment on")
	commentCmd.Flags().StringVarP(&comment.Target, "target", "t", "", "Site name, post or thread id")
	commentCmd.Flags().StringVarP(&comment.Board, "board", "b", "", "Board of the thread")
	commentCmd.Flags().StringVarP(&comment.Content, "message", "m", "", "Comment message")
	commentCmd.Flags().BoolVar(&comment.Anon, "anon", false, "Reply anonymously where supported")
	commentCmd.MarkFlagRequired("message")
	commentImage.register(commentCmd)

	respondCmd.Flags().VarP(&respondPlatforms, "platform", "p", "Platform of the request (default pinchedin)")
}

func runPost(cmd *cobra.Command, args []string) error {
	id, err := postPlatforms.Single()
	if err != nil {
		return err
	}
	img, err := postImage.image()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	item, err := client.Post(cmd.Context(), id, api.PostRequest{Post: post, Image: img})
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), "Posted", client, id, item)
}

func runComment(cmd *cobra.Command, args []string) error {
	id, err := commentPlatforms.Single()
	if err != nil {
		return err
	}
	img, err := commentImage.image()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	item, err := client.Comment(cmd.Context(), id, api.CommentRequest{Comment: comment, Image: img})
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), "Commented", client, id, item)
}

func runRespond(cmd *cobra.Command, args []string) error {
	id := platform.PinchedIn
	if len(respondPlatforms.IDs) > 0 {
		var err error
		if id, err = respondPlatforms.Single(); err != nil {
			return err
		}
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	item, err := client.Respond(cmd.Context(), id, args[0], args[1])
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), "Updated", client, id, item)
}

func writeResult(w io.Writer, verb string, client *api.Client, id platform.ID, item platform.Item) error {
	if jsonFlag {
		return writeJSON(w, item)
	}
	fmt.Fprintf(w, "%s on %s", verb, nameOf(client.Registry(), id))
	if ref := item.String("id", "url", "slug"); ref != "" {
		fmt.Fprintf(w, ": %s", ref)
	}
	fmt.Fprintln(w)
	return nil
}
