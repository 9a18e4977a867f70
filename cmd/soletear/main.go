// Command soletear is the solar hot-water savings calculator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/ErikTaylerd/soletear-calculator/internal/cli"
	"github.com/ErikTaylerd/soletear-calculator/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps errors to the process exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
