// Command coursectl validates, diffs and reviews course documents offline.
// Documents are YAML or JSON files shaped like the API's course payload.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
