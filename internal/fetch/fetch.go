package fetch

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/mfigat/prompt/internal/script"
)

// Script downloads a remote script file and parses it into a Script. The
// title comes from the URL's filename; PDF sources are extracted to plain
// text.
func Script(ctx context.Context, client *http.Client, fileURL string) (script.Script, error) {
	cache, err := NewCache(client)
	if err != nil {
		return script.Script{}, err
	}
	cached, err := cache.Fetch(ctx, fileURL)
	if err != nil {
		return script.Script{}, err
	}
	s, err := script.LoadFile(cached)
	if err != nil {
		return script.Script{}, err
	}
	if title := titleFromURL(fileURL); title != "" {
		s.Title = title
	}
	return s, nil
}

// titleFromURL strips the directory and extension from the URL path. The
// cached filename is a content hash, so it makes a poor title.
func titleFromURL(fileURL string) string {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return ""
	}
	base := path.Base(parsed.Path)
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
