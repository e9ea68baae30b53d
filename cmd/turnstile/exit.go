package main

import "fmt"

// ExitError carries a specific process exit code through cobra without
// printing anything; check results are already on screen when it fires.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
