// Command colorchecker is a CLI for running the ColorChecker chart
// detection and scoring pipeline against still images.
package main

import "github.com/colorchecker/verifier-core/cmd/colorchecker/cmd"

func main() {
	cmd.Execute()
}
