// Package configs provides the embedded configuration template for
// keymatch.
//
// The template is embedded at build time so it is available in every
// distribution; "keymatch config init" writes it verbatim to the user
// config path. Edit config.example.yaml and rebuild to change it.
package configs

import _ "embed"

// ConfigTemplate is the annotated user configuration written by
// "keymatch config init".
//
//go:embed config.example.yaml
var ConfigTemplate string
