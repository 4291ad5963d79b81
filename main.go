package main

import (
	"os"

	"github.com/jmercier/collegien/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
