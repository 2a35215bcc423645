package data

import (
	"embed"
)

// WebAssets holds the embedded mini-app frontend files under web/.
//
//go:embed web
var WebAssets embed.FS

//go:embed web/index.html
var IndexHTML string
