package lang

import "embed"

//go:embed locales/*.yml
var localeFS embed.FS
