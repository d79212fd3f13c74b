package domain

import "fmt"

// AuthError means the controller rejected the credentials or returned
// no token. It aborts the run.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// DiscoveryError means the site discovery call itself failed. An
// empty site list is not a DiscoveryError.
type DiscoveryError struct {
	Err error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("site discovery failed: %v", e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// RenderError means the report document could not be produced or
// written. All collection work is done by the time it can occur.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("report rendering failed for %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("report rendering failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
