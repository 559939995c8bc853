//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext derives the command context from parent. An interrupt
// cancels it: running conversions return and a batch writes no further
// documents.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
