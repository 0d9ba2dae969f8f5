package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mihaiBront/venvup/cmd/venvup"
	"github.com/mihaiBront/venvup/pkg/style"
)

func main() {
	rootCmd := venvup.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// A command that already reported its own failure hands over
		// the exit status without a second message
		var exitErr *venvup.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				printError(exitErr.Err)
			}
			os.Exit(exitErr.Code)
		}

		printError(err)

		// Show the full help for the command that failed
		fmt.Fprintln(os.Stderr)
		_ = rootCmd.Help()

		os.Exit(1)
	}
}

// printError prints the error in red
func printError(err error) {
	errorStyle := style.GetStyle("Error")
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
}
