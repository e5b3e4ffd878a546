// Command tidylens scores and compares factor-analysis models against a
// reference clustering using the tidiness metric.
package main

import (
	"os"

	"github.com/lingstat/tidylens/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
