package web

import "embed"

// FS holds the static assets served under /static.
//
//go:embed static
var FS embed.FS
