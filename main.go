package main

import (
	"os"

	"github.com/psen/funcquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
