package main

import (
	"os"

	"github.com/rahulv/mathquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
