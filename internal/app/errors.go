package app

import "fmt"

// StepError reports a child process that failed while strict mode was on.
type StepError struct {
	// Step is "build" or "run".
	Step string
	// Code is the child's exit status, -1 if it never started.
	Code int
	Err  error
}

func (e *StepError) Error() string {
	what := "compiler"
	if e.Step == "run" {
		what = "VM"
	}
	if e.Code < 0 {
		return fmt.Sprintf("%s failed: %s could not be started: %v", e.Step, what, e.Err)
	}
	return fmt.Sprintf("%s failed: %s exited with code %d", e.Step, what, e.Code)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
