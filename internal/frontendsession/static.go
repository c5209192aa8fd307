package frontendsession

import "embed"

// Static holds the plugin stylesheets, served under pf/FrontendSession/
//
//go:embed css
var Static embed.FS
