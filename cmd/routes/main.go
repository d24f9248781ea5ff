// Command routes inspects the dashboard route table: the assembled tree,
// the menu projected for a permission set, and path resolution.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
