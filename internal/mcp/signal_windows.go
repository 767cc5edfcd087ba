//go:build windows

package mcp

import (
	"os"
	"os/signal"
)

// notifySignals forwards shutdown signals to ch. Windows only delivers
// os.Interrupt (Ctrl+C).
func notifySignals(ch chan<- os.Signal) {
	signal.Notify(ch, os.Interrupt)
}
