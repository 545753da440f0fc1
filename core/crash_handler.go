package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Reset sequence used when no screen is registered: leave alt screen, show cursor, reset attributes
const emergencyReset = "\x1b[?1049l\x1b[?25h\x1b[0m"

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen

	// Overridden in tests
	crashOutput io.Writer = os.Stderr
	resetOutput io.Writer = os.Stdout
	exitFunc              = os.Exit
)

// SetCrashScreen registers the screen finalized by HandleCrash; nil unregisters
func SetCrashScreen(s tcell.Screen) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	// Restore terminal to sane state before printing
	if s != nil {
		s.Fini()
	} else {
		io.WriteString(resetOutput, emergencyReset)
	}

	fmt.Fprintf(crashOutput, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exitFunc(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
