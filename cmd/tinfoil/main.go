package main

import (
	"fmt"
	"os"
)

var tool tinfoil

func main() {
	tool.out = os.Stdout
	tool.loadApp()

	if err := tool.app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
