// Command numberflow prints and previews NumberFlow render plans.
package main

import (
	"os"

	"github.com/go-drift/numberflow/cmd/numberflow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
