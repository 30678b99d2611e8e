package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/pico-cs/go-reset/reset"
)

// Exit codes.
const (
	exitSuccess    = 0
	exitGeneral    = 1 // usage errors and anything unclassified
	exitParse      = 2
	exitConnection = 3
	exitWrite      = 4
)

var (
	errFmt  = color.New(color.FgRed, color.Bold).SprintFunc()
	hintFmt = color.New(color.FgYellow).SprintFunc()
	okFmt   = color.New(color.FgGreen).SprintFunc()
)

func exitCode(err error) int {
	var (
		parseErr *reset.ParseError
		connErr  *reset.ConnectionError
		writeErr *reset.WriteError
	)
	switch {
	case err == nil:
		return exitSuccess
	case errors.As(err, &parseErr):
		return exitParse
	case errors.As(err, &connErr):
		return exitConnection
	case errors.As(err, &writeErr):
		return exitWrite
	default:
		return exitGeneral
	}
}

func hint(err error) string {
	var connErr *reset.ConnectionError
	switch {
	case errors.Is(err, reset.ErrUnknownKind):
		return "--main_comm must be USB or IP"
	case errors.Is(err, reset.ErrInvalidAddress):
		return "--main_config must be port@baudrate for USB or address@port for IP"
	case errors.Is(err, reset.ErrInvalidTiming):
		return "--delay and --timeout must not be negative"
	case errors.As(err, &connErr) && connErr.Kind == reset.KindUSB:
		return "check the device path and that no other program holds the port, 'resetter ports' lists the available ports"
	case errors.As(err, &connErr):
		return "check that the receiver is reachable and accepts connections on this port"
	}
	return ""
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", errFmt("Error:"), err)
	if h := hint(err); h != "" {
		fmt.Fprintf(w, "%s %s\n", hintFmt("Hint:"), h)
	}
}
