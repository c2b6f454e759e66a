// Command pitchctl is the command line interface for match highlight
// analysis.
package main

import "github.com/coachos/pitchpilot/internal/cli"

func main() {
	cli.Execute()
}
