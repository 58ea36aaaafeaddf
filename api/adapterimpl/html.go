package adapterimpl

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	html2md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/elyanlabs/grazer/api/platform"
	"github.com/mackee/go-readability"
)

// fetchReadable fetches an HTML page and converts it to markdown
func (b *base) fetchReadable(ctx context.Context, path string) (string, error) {
	data, err := b.roundTrip(ctx, call{
		method: http.MethodGet,
		path:   path,
		auth:   platform.AuthNone,
		accept: "text/html",
	})
	if err != nil {
		return "", err
	}

	host := ""
	if u, err := url.Parse(b.desc.BaseURL); err == nil {
		host = u.Host
	}

	md, err := Markdown(host, string(data))
	if err != nil {
		// Raw HTML is still better than nothing
		return string(data), nil
	}
	return md, nil
}

// Markdown converts an HTML document or fragment to markdown.
// Readability extraction is tried first, html-to-markdown is the fallback.
func Markdown(host, body string) (string, error) {
	article, err := readability.Extract(body, readability.DefaultOptions())
	if err == nil && article.Root != nil {
		return readability.ToMarkdown(article.Root), nil
	}

	converter := html2md.NewConverter(host, true, &html2md.Options{})
	md, err := converter.ConvertString(body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}

// LooksLikeHTML reports whether s contains markup worth converting
func LooksLikeHTML(s string) bool {
	i := strings.IndexByte(s, '<')
	if i < 0 {
		return false
	}
	j := strings.IndexByte(s[i:], '>')
	return j > 1
}
