// Package assets embeds the default game configuration and level layouts.
package assets

import "embed"

// ConfigFile is the name of the default config inside FS.
const ConfigFile = "config.toml"

//go:embed config.toml levels/*.txt
var FS embed.FS
