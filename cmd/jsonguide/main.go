// Command jsonguide exposes the schema-guided completion engine on the
// command line and over HTTP.
//
//	jsonguide complete --schema '{"type":"boolean"}' --text 'tr'
//	jsonguide find-end --schema-file person.yaml < output.txt
//	jsonguide check --schema-file person.json
//	jsonguide serve --config jsonguide.yaml
package main

import (
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
