package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airmetrics/rrmreport/internal/core/domain"
)

func TestClassifyRunError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"Auth failure", &domain.AuthError{Err: errors.New("bad credentials")}, exitCodeAuth},
		{"Discovery failure", &domain.DiscoveryError{Err: errors.New("connection refused")}, exitCodeDiscovery},
		{"Render failure", &domain.RenderError{Path: "out.pdf", Err: errors.New("disk full")}, exitCodeRender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ee *exitError
			require.ErrorAs(t, classifyRunError(tt.err), &ee)
			assert.Equal(t, tt.code, ee.code)
		})
	}
}

func TestClassifyRunErrorInterruptWins(t *testing.T) {
	// An interrupt landing mid-request surfaces wrapped in the
	// discovery taxonomy; the cancellation still decides the exit code.
	err := classifyRunError(&domain.DiscoveryError{Err: fmt.Errorf("fetching sites: %w", context.Canceled)})
	assert.Equal(t, 130, runMain(func() error { return err }))
}

func TestRunMainExitCodes(t *testing.T) {
	assert.Equal(t, 0, runMain(func() error { return nil }))
	assert.Equal(t, exitCodeAuth, runMain(func() error {
		return &exitError{code: exitCodeAuth, err: errors.New("rejected")}
	}))
	assert.Equal(t, 130, runMain(func() error { return context.Canceled }))
	assert.Equal(t, 1, runMain(func() error { return errors.New("unclassified") }))
}
