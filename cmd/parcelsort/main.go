// Command parcelsort classifies one package from the command line and prints
// its stack: STANDARD, SPECIAL or REJECTED.
//
//	parcelsort "50,30,20,5000"
package main

import (
	"os"

	"parcelsort/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
