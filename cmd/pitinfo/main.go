// Command pitinfo prints the contents of a Samsung PIT file.
package main

import (
	"os"

	"github.com/FergusInLondon/PitParser/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
