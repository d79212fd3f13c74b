package main

import "fmt"

// Exit codes per failure class. Any metric fetch failure is absorbed
// during collection and never reaches this mapping.
const (
	exitCodeAuth      = 2
	exitCodeDiscovery = 3
	exitCodeRender    = 4
)

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e == nil {
		return ""
	}
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit %d", e.code)
}

func (e *exitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}
