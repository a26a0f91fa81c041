package main

import (
	"fmt"
	"os"
	"septic/src/ui"
)

func main() {
	if err := ui.RunSeptic(); err != nil {
		fmt.Fprintf(os.Stderr, "septic: %v\n", err)
		os.Exit(1)
	}
}
