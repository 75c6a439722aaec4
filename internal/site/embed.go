package site

import "embed"

// assets holds the HTML templates and the files served under /static/.
//
//go:embed templates/*.html static
var assets embed.FS
