// Package web embeds the document templates consumed by the rendering
// backend.
package web

import "embed"

// Templates embeds the HTML sources of the four paper forms.
//
//go:embed templates/documents/*.html
var Templates embed.FS
