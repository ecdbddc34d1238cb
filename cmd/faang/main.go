// Package main is the entry point for the faang CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dbmrq/faang/cmd/faang/cmd"
	faangerrors "github.com/dbmrq/faang/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()

	if err != nil {
		if fe, ok := faangerrors.As(err); ok {
			fmt.Fprint(os.Stderr, fe.Format())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
