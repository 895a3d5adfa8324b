// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/deckhtml/internal/stylemap"
	"github.com/pdiddy/deckhtml/pkg/types"
)

const defaultImageSubtype = "png"

var subtypeRe = regexp.MustCompile(`^[a-z0-9][a-z0-9.+-]*$`)

// imageSubtype maps "image/jpeg", "jpeg" or "" to the data URI subtype.
func imageSubtype(mime string) string {
	sub := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(mime)), "image/")
	if !subtypeRe.MatchString(sub) {
		return defaultImageSubtype
	}
	return sub
}

// image embeds the picture bytes as a base64 data URI. Pictures without
// bytes fall back to a labelled placeholder.
func image(b *strings.Builder, s *types.Shape, img types.Image) {
	if len(img.Data) == 0 {
		label := img.AltText
		if label == "" {
			label = img.Name
		}
		fmt.Fprintf(b, "<div class=\"image-placeholder\"%s>[Image: %s]</div>\n",
			styleAttr(stylemap.Image(s.Style, s)), EscapeHTML(label))
		return
	}
	fmt.Fprintf(b, "<img src=\"data:image/%s;base64,%s\" alt=\"%s\" style=\"%s\" />\n",
		imageSubtype(img.Type),
		base64.StdEncoding.EncodeToString(img.Data),
		EscapeHTML(img.AltText),
		stylemap.Image(s.Style, s))
}
