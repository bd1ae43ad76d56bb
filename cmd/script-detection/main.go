package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/Garbee/script-detection/internal/cli"
	"github.com/Garbee/script-detection/pkg/scriptdetect"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(scriptdetect.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(scriptdetect.ExitCodeForError(err))
	}
}
