// Package main is the entry point for the tc CLI.
package main

import (
	"errors"
	"os"

	"github.com/pegasus-wms/tc/internal/cmd"
	oerrors "github.com/pegasus-wms/tc/internal/errors"
	"github.com/pegasus-wms/tc/internal/output"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// Check if the error carries an explicit exit code
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already
			if !exitErr.Printed {
				output.Details(err.Error())
			}
			os.Exit(exitErr.Code)
		}
		// No explicit code: print and map the error chain
		output.Details(err.Error())
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
