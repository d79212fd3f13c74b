package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(runMain(Execute))
}

func runMain(execute func() error) int {
	err := execute()
	if err == nil {
		return 0
	}

	var ee *exitError
	if errors.As(err, &ee) {
		fmt.Fprintln(os.Stderr, ee.Error())
		return ee.code
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "canceled")
		return 130
	}

	fmt.Fprintln(os.Stderr, err)
	return 1
}
