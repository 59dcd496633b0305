package main

import (
	"os"

	"github.com/mgillet/paceplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
