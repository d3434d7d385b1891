package main

import (
	"errors"
	"fmt"
	"ncpaint/device"
	"os"
)

const (
	exitInit  = 32
	exitQuit  = 33
	exitMouse = 35
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, device.ErrMouseUnsupported):
		return exitMouse
	case errors.Is(err, device.ErrInit):
		return exitInit
	case errors.Is(err, device.ErrTeardown):
		return exitQuit
	}
	return 1
}
