// Package data bundles the default datasets (states.json and art.json).
package data

import "embed"

// FS holds the bundled datasets at its root.
//
//go:embed *.json
var FS embed.FS
