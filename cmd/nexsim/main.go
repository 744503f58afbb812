package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess     = 0 // simulation satisfied every target
	ExitUnmetTarget = 1 // simulation finished with unmet targets
	ExitError       = 2 // configuration or runtime error
)

// UnmetTargetsError indicates that a simulation ran to completion but could
// not cover every aggregated target with the available interventions.
type UnmetTargetsError struct {
	Message string
}

func (e *UnmetTargetsError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var unmetErr *UnmetTargetsError
		if errors.As(err, &unmetErr) {
			os.Exit(ExitUnmetTarget)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
