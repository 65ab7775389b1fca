package utils

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandling returns a context that is cancelled on SIGINT or
// SIGTERM. onSignal, when set, runs before the cancellation. The returned
// stop function releases the signal handler.
func SetupSignalHandling(parent context.Context, onSignal func(os.Signal)) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			if onSignal != nil {
				onSignal(sig)
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	stop := func() {
		signal.Stop(sigCh)
		cancel()
	}
	return ctx, stop
}
