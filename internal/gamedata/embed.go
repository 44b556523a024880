// Package gamedata provides embedded game data and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds all JSON and YAML files from this directory at build time.
//
//go:embed *.json *.yaml
var dataFS embed.FS
