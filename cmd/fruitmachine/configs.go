package main

import "embed"

// configFS holds the default machine configuration
//
//go:embed configs
var configFS embed.FS
