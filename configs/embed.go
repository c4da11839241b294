// Package configs provides embedded configuration templates for recentlog.
//
// Templates are embedded at build time with //go:embed so they ship in
// every distribution. `recentlog config init` writes UserConfigTemplate to
// ~/.config/recentlog/config.yaml.
package configs

import _ "embed"

// UserConfigTemplate is the commented template for the user configuration.
//
//go:embed user-config.example.yaml
var UserConfigTemplate string
