package render

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/bornholm/notionhtml/internal/core/model"
)

// componentUnescaper restores the characters url.QueryEscape encodes but
// encodeURIComponent leaves untouched.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeComponent escapes a value the way encodeURIComponent does.
func escapeComponent(value string) string {
	return componentUnescaper.Replace(url.QueryEscape(value))
}

// imageSrc returns the store image proxy address of the given original
// image url.
func (r *Renderer) imageSrc(originalURL string, blockID model.BlockID) string {
	src := fmt.Sprintf(
		"%s/image/%s?table=block&id=%s&cache=v2",
		strings.TrimSuffix(r.opts.ImageBaseURL, "/"),
		escapeComponent(originalURL),
		blockID,
	)

	if r.opts.ImageWidth > 0 {
		src += "&width=" + strconv.Itoa(r.opts.ImageWidth)
	}

	return src
}

func (r *Renderer) emojiSrc(emoji string) string {
	return strings.TrimSuffix(r.opts.EmojiBaseURL, "/") + "/" + escapeComponent(emoji)
}

// iconSrc resolves a page icon that is either a remote image or an emoji.
func (r *Renderer) iconSrc(icon string, blockID model.BlockID) string {
	if strings.HasPrefix(icon, "http") {
		return r.imageSrc(icon, blockID)
	}

	return r.emojiSrc(icon)
}
