// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"\r\n", "<br>",
	"\r", "<br>",
	"\n", "<br>",
)

// EscapeHTML is the only path by which document text reaches the output.
// It replaces the five markup-significant characters with entities and
// turns each line break into a <br> element. The replacement is a single
// pass, so entities produced here are never escaped again; callers must
// still apply it exactly once per field.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
