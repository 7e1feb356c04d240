/*
lvtopo orders declared items by group-level before/after constraints.

Usage:

	lvtopo sort [--format text|json|table] <manifest>...
	lvtopo validate <manifest>...

Manifests may be YAML, TOML or JSON; see package manifest for the schema.
*/
package main

import (
	"os"

	"github.com/katalvlaran/lvtopo/internal/cli"
)

// Version can be set during build with -ldflags
var version = "dev"

func main() {
	cli.SetVersion(version)
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
