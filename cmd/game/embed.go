package main

import "embed"

// configFS holds the default game, level and question files
//
//go:embed configs
var configFS embed.FS
