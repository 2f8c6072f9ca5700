// Package static embeds the dashboard's static assets.
package static

import "embed"

// FS exposes dashboard static assets for HTTP serving.
//
//go:embed *.css *.js
var FS embed.FS
