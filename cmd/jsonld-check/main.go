// SPDX-License-Identifier: Apache-2.0

// Command jsonld-check reports whether the JSON-LD blocks embedded in the
// site's pages are well-formed JSON.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
