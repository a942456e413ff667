package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// таймаут всего прогона + отмена по Ctrl-C/SIGTERM; d <= 0 — без таймаута
func withTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil { parent = context.Background() }
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	if d <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, d)
	return ctx, func() { cancel(); stop() }
}
