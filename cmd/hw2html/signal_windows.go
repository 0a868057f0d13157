//go:build windows

package main

import "os"

// shutdownSignals cancel a running batch. SIGTERM is not delivered on Windows.
var shutdownSignals = []os.Signal{os.Interrupt}
