package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/mihaiBront/venvup/cmd/venvup"
	"github.com/mihaiBront/venvup/internal/version"
)

func main() {
	rootCmd := venvup.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "VENVUP",
		Section: "1",
		Source:  "venvup " + version.Version,
		Manual:  "venvup manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
