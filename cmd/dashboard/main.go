// Socialboard dashboard CLI
//
// Usage:
//
//	dashboard stats --base-url http://localhost:8080 --token <jwt>
//	dashboard export --table posts --platform instagram
//	dashboard token --user dev
package main

import (
	"Socialboard/cmd/dashboard/cli"
	"fmt"
	"os"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
