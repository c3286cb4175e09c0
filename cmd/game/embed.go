package main

import "embed"

// configFS holds the default configs and maps
//
//go:embed configs
var configFS embed.FS
