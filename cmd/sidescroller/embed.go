package main

import "embed"

//go:embed configs/settings.yaml configs/stages/*.json
var configFS embed.FS
